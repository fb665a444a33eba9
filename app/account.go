package app

import (
	"context"

	"github.com/borz-social/borz/domain"
)

// UserService fetches public profiles.
type UserService interface {
	// User returns the profile for a user id.
	User(ctx context.Context, userID string) (domain.User, error)
}

// AccountService manages credentials. None of its calls need a session.
type AccountService interface {
	// Authenticate exchanges a username and password for a session.
	Authenticate(ctx context.Context, username, password string) (domain.Session, error)

	// Refresh exchanges a refresh token for a new session.
	Refresh(ctx context.Context, refreshToken string) (domain.Session, error)

	// Register creates a new, unverified account.
	Register(ctx context.Context, email, username, password string) error

	// Verify confirms an account with the token sent by email.
	Verify(ctx context.Context, token string) error
}
