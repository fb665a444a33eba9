package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/config"
)

type stubRefresher struct {
	calls   int
	gotRT   string
	session domain.Session
	err     error
}

func (s *stubRefresher) Refresh(_ context.Context, rt string) (domain.Session, error) {
	s.calls++
	s.gotRT = rt
	return s.session, s.err
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "alice"}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{Server: config.DefaultServer}.WithPath(filepath.Join(t.TempDir(), "config.json"))
}

func TestSession_FreshTokenIsReused(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cfg := testConfig(t)
	cfg.Token = signed(t, now.Add(10*time.Minute))
	cfg.RefreshToken = "rt"

	r := &stubRefresher{}
	s := NewSession(cfg, r)
	s.now = func() time.Time { return now }

	got, err := s.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Token, got)
	assert.Zero(t, r.calls)
}

func TestSession_RefreshesNearExpiryAndPersists(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cfg := testConfig(t)
	cfg.Username = "alice"
	cfg.Token = signed(t, now.Add(10*time.Second))
	cfg.RefreshToken = "rt-old"

	fresh := signed(t, now.Add(time.Hour))
	r := &stubRefresher{session: domain.Session{Token: fresh, RefreshToken: "rt-new"}}
	s := NewSession(cfg, r)
	s.now = func() time.Time { return now }

	got, err := s.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, "rt-old", r.gotRT)

	loaded, err := config.Load(cfg.Path())
	require.NoError(t, err)
	assert.Equal(t, fresh, loaded.Token)
	assert.Equal(t, "rt-new", loaded.RefreshToken)
	assert.Equal(t, "alice", loaded.Username)

	// Second call uses the cached token.
	_, err = s.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
}

func TestSession_MissingTokenRefreshes(t *testing.T) {
	cfg := testConfig(t)
	cfg.RefreshToken = "rt"
	r := &stubRefresher{session: domain.Session{Token: "opaque"}}
	s := NewSession(cfg, r)

	got, err := s.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque", got)
	assert.Equal(t, "rt", s.Config().RefreshToken)
}

func TestSession_NotLoggedIn(t *testing.T) {
	r := &stubRefresher{}
	s := NewSession(testConfig(t), r)

	_, err := s.AccessToken(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, r.calls)
}

func TestSession_RefreshFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.RefreshToken = "rt"
	r := &stubRefresher{err: domain.ErrRemote}
	s := NewSession(cfg, r)

	_, err := s.AccessToken(context.Background())
	require.ErrorIs(t, err, domain.ErrRemote)
	assert.Empty(t, s.Config().Token)
}

func TestExpiresWithin(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "garbage", token: "not-a-jwt", want: true},
		{name: "expired", token: signed(t, now.Add(-time.Minute)), want: true},
		{name: "inside leeway", token: signed(t, now.Add(29*time.Second)), want: true},
		{name: "outside leeway", token: signed(t, now.Add(31*time.Second)), want: false},
		{name: "no exp", token: signed(t, time.Time{}), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expiresWithin(tt.token, now, expiryLeeway))
		})
	}
}

var errBoom = errors.New("boom")
