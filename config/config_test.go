package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYMENTS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PAYMENTS_LOG_LEVEL", "")
	t.Setenv("PAYMENTS_REJECTION_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "debug", cfg.RejectionLogLevel)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PAYMENTS_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PAYMENTS_LOG_LEVEL", "info")
	t.Setenv("PAYMENTS_REJECTION_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "warn", cfg.RejectionLogLevel)
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.env")
	require.NoError(t, os.WriteFile(path, []byte("PAYMENTS_REJECTION_LOG_LEVEL=info\n"), 0o600))
	t.Setenv("PAYMENTS_ENV_FILE", path)
	// Registered with t.Setenv so the value godotenv sets is restored after the test.
	t.Setenv("PAYMENTS_REJECTION_LOG_LEVEL", "")
	os.Unsetenv("PAYMENTS_REJECTION_LOG_LEVEL")
	t.Setenv("PAYMENTS_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.RejectionLogLevel)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadUnreadableEnvFile(t *testing.T) {
	t.Setenv("PAYMENTS_ENV_FILE", t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load "), err.Error())
}

type parseTestConfig struct {
	Count int `env:"PAYMENTS_TEST_COUNT" envDefault:"3"`
}

func TestParseEnvError(t *testing.T) {
	var cfg parseTestConfig
	t.Setenv("PAYMENTS_TEST_COUNT", "three")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
