package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.NotEmpty(t, cfg.Spanner.Database)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 60*time.Second, cfg.ProfileTTL())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
spanner:
  database: projects/p/instances/i/databases/d
redis:
  addr: localhost:6379
cache:
  profile_ttl_seconds: 120
logging:
  level: debug
  pretty: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "projects/p/instances/i/databases/d", cfg.Spanner.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Minute, cfg.ProfileTTL())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
`)

	t.Setenv("PRICING_SERVER_PORT", "9100")
	t.Setenv("PRICING_REDIS_ADDR", "redis:6379")
	t.Setenv("PRICING_PROFILE_TTL_SECONDS", "30")
	t.Setenv("PRICING_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.ProfileTTL())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [not a mapping")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: -1\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("empty spanner database", func(t *testing.T) {
		path := writeConfig(t, "spanner:\n  database: \"\"\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
