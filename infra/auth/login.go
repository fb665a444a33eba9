package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/config"
)

// Authenticator exchanges credentials for a session.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (domain.Session, error)
}

// Login authenticates and persists the resulting session into cfg.
func Login(ctx context.Context, a Authenticator, cfg config.Config, username, password string) (config.Config, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return cfg, domain.ErrEmptyCredentials
	}

	sess, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return cfg, err
	}
	cfg.Username = username
	cfg.Token = sess.Token
	cfg.RefreshToken = sess.RefreshToken
	if err := cfg.Save(); err != nil {
		return cfg, fmt.Errorf("saving session: %w", err)
	}
	return cfg, nil
}

// Logout clears the session from cfg and persists it.
func Logout(cfg config.Config) (config.Config, error) {
	cfg.Username = ""
	cfg.Token = ""
	cfg.RefreshToken = ""
	if err := cfg.Save(); err != nil {
		return cfg, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}
