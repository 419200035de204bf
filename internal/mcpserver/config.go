package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds the MCP server defaults, read once from SPECDIFF_*
// environment variables.
type serverConfig struct {
	// Parsed-document cache.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Diff defaults. Zero Concurrency leaves the differ default in place.
	Concurrency int
	PolicyFile  string
}

var cfg = loadConfig()

// loadConfig reads SPECDIFF_* variables. Invalid values are logged and
// replaced by their defaults.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("SPECDIFF_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("SPECDIFF_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("SPECDIFF_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("SPECDIFF_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("SPECDIFF_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("SPECDIFF_CACHE_SWEEP_INTERVAL", time.Minute),
		MaxInlineSize:      int64(envInt("SPECDIFF_MAX_INLINE_SIZE", 10<<20)),
		AllowPrivateIPs:    envBool("SPECDIFF_ALLOW_PRIVATE_IPS", false),
		Concurrency:        envInt("SPECDIFF_CONCURRENCY", 0),
		PolicyFile:         os.Getenv("SPECDIFF_POLICY_FILE"),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
