package graphql

import (
	"context"
	"fmt"
	"strings"

	"github.com/borz-social/borz/domain"
)

// accountService implements app.AccountService. Every call is anonymous, so
// it is safe to use as the refresher behind an auth.Session.
type accountService struct {
	client *Client
}

// NewAccountService creates an AccountService backed by the GraphQL API.
func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

type tokenPayload struct {
	mutationResult
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (p tokenPayload) session(op string) (domain.Session, error) {
	if err := p.err(op); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(p.Token) == "" {
		return domain.Session{}, fmt.Errorf("%s: %w: missing token", op, domain.ErrRemote)
	}
	return domain.Session{Token: p.Token, RefreshToken: p.RefreshToken}, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (domain.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Session{}, domain.ErrEmptyCredentials
	}
	var data struct {
		TokenAuth tokenPayload `json:"tokenAuth"`
	}
	vars := map[string]any{"username": username, "password": password}
	if err := s.client.Anonymous(ctx, "AuthMutation", authMutation, vars, &data); err != nil {
		return domain.Session{}, fmt.Errorf("authenticating: %w", err)
	}
	return data.TokenAuth.session("authenticating")
}

func (s *accountService) Refresh(ctx context.Context, refreshToken string) (domain.Session, error) {
	var data struct {
		RefreshToken tokenPayload `json:"refreshToken"`
	}
	vars := map[string]any{"refreshToken": refreshToken}
	if err := s.client.Anonymous(ctx, "RefreshMutation", refreshMutation, vars, &data); err != nil {
		return domain.Session{}, fmt.Errorf("refreshing session: %w", err)
	}
	return data.RefreshToken.session("refreshing session")
}

func (s *accountService) Register(ctx context.Context, email, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.ErrEmptyCredentials
	}
	var data struct {
		Register mutationResult `json:"register"`
	}
	vars := map[string]any{"email": email, "username": username, "password": password}
	if err := s.client.Anonymous(ctx, "RegisterMutation", registerMutation, vars, &data); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	return data.Register.err("registering")
}

func (s *accountService) Verify(ctx context.Context, token string) error {
	var data struct {
		VerifyAccount mutationResult `json:"verifyAccount"`
	}
	if err := s.client.Anonymous(ctx, "VerifyMutation", verifyMutation, map[string]any{"token": token}, &data); err != nil {
		return fmt.Errorf("verifying account: %w", err)
	}
	return data.VerifyAccount.err("verifying account")
}
