package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/config"
)

type stubAuthenticator struct {
	calls   int
	session domain.Session
	err     error
}

func (s *stubAuthenticator) Authenticate(context.Context, string, string) (domain.Session, error) {
	s.calls++
	return s.session, s.err
}

func TestLogin_PersistsSession(t *testing.T) {
	cfg := testConfig(t)
	a := &stubAuthenticator{session: domain.Session{Token: "tok", RefreshToken: "rt"}}

	got, err := Login(context.Background(), a, cfg, "  alice ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	loaded, err := config.Load(cfg.Path())
	require.NoError(t, err)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "rt", loaded.RefreshToken)
	assert.Equal(t, "alice", loaded.Username)
	assert.True(t, loaded.LoggedIn())
}

func TestLogin_EmptyCredentials(t *testing.T) {
	a := &stubAuthenticator{}
	for _, tc := range [][2]string{{"", "pw"}, {"   ", "pw"}, {"alice", ""}} {
		_, err := Login(context.Background(), a, testConfig(t), tc[0], tc[1])
		require.ErrorIs(t, err, domain.ErrEmptyCredentials)
	}
	assert.Zero(t, a.calls)
}

func TestLogin_AuthFailureLeavesConfigUntouched(t *testing.T) {
	cfg := testConfig(t)
	a := &stubAuthenticator{err: errBoom}

	got, err := Login(context.Background(), a, cfg, "alice", "pw")
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, got.Username)
	assert.NoFileExists(t, cfg.Path())
}

func TestLogout_ClearsSession(t *testing.T) {
	cfg := testConfig(t)
	cfg.Username = "alice"
	cfg.Token = "tok"
	cfg.RefreshToken = "rt"
	require.NoError(t, cfg.Save())

	got, err := Logout(cfg)
	require.NoError(t, err)
	assert.False(t, got.LoggedIn())

	loaded, err := config.Load(cfg.Path())
	require.NoError(t, err)
	assert.Empty(t, loaded.Token)
	assert.Empty(t, loaded.RefreshToken)
	assert.Empty(t, loaded.Username)
	assert.Equal(t, config.DefaultServer, loaded.Server)
}
