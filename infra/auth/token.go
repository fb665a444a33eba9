package auth

import (
	"context"
	"fmt"
	"strings"
)

// TokenProvider supplies a session token for API authentication.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider that always returns the same token.
type StaticToken string

// AccessToken returns the token, trimming whitespace.
func (s StaticToken) AccessToken(context.Context) (string, error) {
	token := strings.TrimSpace(string(s))
	if token == "" {
		return "", fmt.Errorf("static token is empty")
	}
	return token, nil
}
