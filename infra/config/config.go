package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultServer is the GraphQL endpoint used when none is configured.
const DefaultServer = "https://api.borz.social/graphql"

// Config is the persisted client state: session tokens, the logged-in
// username, and the server address.
type Config struct {
	Token        string `mapstructure:"token"`
	RefreshToken string `mapstructure:"refresh_token"`
	Username     string `mapstructure:"username"`
	Server       string `mapstructure:"server"`

	path string
}

// DefaultDir returns ~/.config/borz.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "borz"), nil
}

// DefaultPath returns ~/.config/borz/config.json.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file yields defaults; a malformed one is an error.
//
//	BORZ_SERVER        GraphQL endpoint (default: DefaultServer)
//	BORZ_TOKEN         session token override
//	BORZ_REFRESH_TOKEN refresh token override
//	BORZ_USERNAME      username override
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("BORZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server", DefaultServer)
	v.SetDefault("token", "")
	v.SetDefault("refresh_token", "")
	v.SetDefault("username", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	server, err := normalizeServer(cfg.Server)
	if err != nil {
		return Config{}, err
	}
	cfg.Server = server
	cfg.path = path
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c Config) Path() string {
	return c.path
}

// WithPath returns a copy that saves to path.
func (c Config) WithPath(path string) Config {
	c.path = path
	return c
}

// LoggedIn reports whether a refresh token is available.
func (c Config) LoggedIn() bool {
	return strings.TrimSpace(c.RefreshToken) != ""
}

// Save writes the config back to its file with owner-only permissions.
func (c Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("token", c.Token)
	v.Set("refresh_token", c.RefreshToken)
	v.Set("username", c.Username)
	v.Set("server", c.Server)
	if err := v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return os.Chmod(c.path, 0o600)
}

// LogPath returns the log file kept next to the config at path.
func LogPath(path string) string {
	return filepath.Join(filepath.Dir(path), logFile)
}

const logFile = "borz.log"

// Clean removes the config file at path and the log file beside it. The
// default directory is removed entirely; a custom directory only when it is
// left empty.
func Clean(path string) error {
	def, err := DefaultPath()
	if path == "" {
		if err != nil {
			return err
		}
		path = def
	}
	for _, f := range []string{path, LogPath(path)} {
		if err := os.Remove(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", f, err)
		}
	}

	dir := filepath.Dir(path)
	if err == nil && filepath.Clean(path) == filepath.Clean(def) {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
		return nil
	}
	if err := os.Remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) && !isNotEmpty(dir) {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	return nil
}

func isNotEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}

func normalizeServer(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid server %q: must be an absolute URL", raw)
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !isLoopback(parsed.Hostname()) {
			return "", fmt.Errorf("invalid server %q: only https is allowed for remote hosts", raw)
		}
	default:
		return "", fmt.Errorf("invalid server %q: unsupported scheme %s", raw, parsed.Scheme)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
