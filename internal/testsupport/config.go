package testsupport

import (
	"path/filepath"
	"testing"

	"discbin/internal/config"
)

// SigningKey is the session signing key used across tests.
const SigningKey = "test-signing-key-0123456789abcdef"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Session.SigningKey = SigningKey

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithRememberDays overrides the remembered-session horizon on the test config.
func WithRememberDays(days int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Session.RememberDays = days
	}
}
