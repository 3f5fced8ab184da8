package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 5.0, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  address: ":9090"
  shutdown_timeout: 3s
  trust_proxy: true
cache:
  backend: redis
  redis_address: "redis:6379"
  ttl: 24h
ratelimit:
  requests_per_minute: 30
  burst: 10
logging:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Server.TrustProxy)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddress)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 30.0, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LOANOFFER_SERVER_ADDRESS", ":7070")
	t.Setenv("LOANOFFER_LOGGING_LEVEL", "warn")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("LOANOFFER_CACHE_BACKEND", "memcached")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid cache backend")
	})

	t.Run("non-positive rate", func(t *testing.T) {
		t.Setenv("LOANOFFER_RATELIMIT_REQUESTS_PER_MINUTE", "0")
		_, err := Load("")
		assert.ErrorContains(t, err, "requests_per_minute")
	})
}
