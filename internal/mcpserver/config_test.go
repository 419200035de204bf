package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearSpecdiffEnv isolates a test from SPECDIFF_* variables in the ambient environment.
func clearSpecdiffEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SPECDIFF_CACHE_ENABLED", "SPECDIFF_CACHE_MAX_SIZE",
		"SPECDIFF_CACHE_FILE_TTL", "SPECDIFF_CACHE_URL_TTL",
		"SPECDIFF_CACHE_CONTENT_TTL", "SPECDIFF_CACHE_SWEEP_INTERVAL",
		"SPECDIFF_MAX_INLINE_SIZE", "SPECDIFF_ALLOW_PRIVATE_IPS",
		"SPECDIFF_CONCURRENCY", "SPECDIFF_POLICY_FILE",
	} {
		t.Setenv(key, "")
	}
}

// withConfig swaps the package configuration for the duration of a test.
func withConfig(t *testing.T, c *serverConfig) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearSpecdiffEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, time.Minute, c.CacheSweepInterval)
	assert.Equal(t, int64(10<<20), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Zero(t, c.Concurrency)
	assert.Empty(t, c.PolicyFile)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSpecdiffEnv(t)
	t.Setenv("SPECDIFF_CACHE_ENABLED", "false")
	t.Setenv("SPECDIFF_CACHE_MAX_SIZE", "50")
	t.Setenv("SPECDIFF_CACHE_FILE_TTL", "30m")
	t.Setenv("SPECDIFF_CACHE_URL_TTL", "2m")
	t.Setenv("SPECDIFF_CACHE_CONTENT_TTL", "10m")
	t.Setenv("SPECDIFF_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("SPECDIFF_MAX_INLINE_SIZE", "2048")
	t.Setenv("SPECDIFF_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("SPECDIFF_CONCURRENCY", "3")
	t.Setenv("SPECDIFF_POLICY_FILE", "policy.toml")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, 3, c.Concurrency)
	assert.Equal(t, "policy.toml", c.PolicyFile)
}

func TestLoadConfig_InvalidValuesUseDefaults(t *testing.T) {
	clearSpecdiffEnv(t)
	t.Setenv("SPECDIFF_CACHE_ENABLED", "maybe")
	t.Setenv("SPECDIFF_CACHE_MAX_SIZE", "-1")
	t.Setenv("SPECDIFF_CACHE_FILE_TTL", "soon")
	t.Setenv("SPECDIFF_CACHE_URL_TTL", "-5m")
	t.Setenv("SPECDIFF_CONCURRENCY", "lots")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Zero(t, c.Concurrency)
}
