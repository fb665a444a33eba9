package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/config"
	"github.com/borz-social/borz/infra/logger"
)

// expiryLeeway is how close to expiry a cached token may get before it is
// refreshed ahead of a call.
const expiryLeeway = 30 * time.Second

// Refresher exchanges a refresh token for a new session.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (domain.Session, error)
}

// Session is the process-wide token cache. It refreshes the session token
// before authenticated calls and rewrites the config file after every refresh.
type Session struct {
	mu        sync.Mutex
	cfg       config.Config
	refresher Refresher
	now       func() time.Time
	log       *slog.Logger
}

// NewSession creates a Session seeded from the persisted config.
func NewSession(cfg config.Config, r Refresher) *Session {
	return &Session{
		cfg:       cfg,
		refresher: r,
		now:       time.Now,
		log:       logger.ComponentLogger("auth"),
	}
}

// Config returns the current persisted state.
func (s *Session) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// AccessToken returns a session token that is valid for at least
// expiryLeeway, refreshing it first when needed.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Token != "" && !expiresWithin(s.cfg.Token, s.now(), expiryLeeway) {
		return s.cfg.Token, nil
	}
	if !s.cfg.LoggedIn() {
		return "", domain.ErrUnauthorized
	}

	sess, err := s.refresher.Refresh(ctx, s.cfg.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("refreshing session: %w", err)
	}
	s.cfg.Token = sess.Token
	if sess.RefreshToken != "" {
		s.cfg.RefreshToken = sess.RefreshToken
	}
	if err := s.cfg.Save(); err != nil {
		return "", fmt.Errorf("persisting refreshed session: %w", err)
	}
	s.log.Debug("session refreshed", "username", s.cfg.Username)
	return s.cfg.Token, nil
}

// expiresWithin reports whether token expires before now+leeway. Tokens
// that cannot be parsed are treated as expired; tokens without an exp claim
// never expire.
func expiresWithin(token string, now time.Time, leeway time.Duration) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Before(now.Add(leeway))
}
