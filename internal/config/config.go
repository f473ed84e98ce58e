// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Store backends accepted by StoreBackend.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultLocale selects the bundle used when a request carries no locale.
	DefaultLocale string `koanf:"default_locale"`

	// GeneratorBaseURL points at an OpenAI-compatible completion endpoint.
	// Leave empty to serve template scenarios only.
	GeneratorBaseURL string `koanf:"generator_base_url"`

	// GeneratorAPIKey authenticates against the generation endpoint.
	GeneratorAPIKey string `koanf:"generator_api_key"`

	// GeneratorModel names the model used for scenario generation.
	GeneratorModel string `koanf:"generator_model"`

	// GeneratorTimeoutMS bounds a single generation round trip.
	GeneratorTimeoutMS int `koanf:"generator_timeout_ms"`

	// MaxConcurrentGenerations caps in-flight generation requests per batch.
	MaxConcurrentGenerations int `koanf:"max_concurrent_generations"`

	// StoreBackend selects the session store: memory or redis.
	StoreBackend string `koanf:"store_backend"`

	// RedisAddr configures the redis session store, e.g. "localhost:6379".
	RedisAddr string `koanf:"redis_addr"`

	// SessionTTLMinutes expires idle sessions. Zero disables expiry.
	SessionTTLMinutes int `koanf:"session_ttl_minutes"`

	// SessionShardCount configures the number of shards in the memory store.
	SessionShardCount int `koanf:"session_shard_count"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:                 "info",
		Addr:                     ":9080",
		DefaultLocale:            "en",
		GeneratorBaseURL:         "",
		GeneratorAPIKey:          "",
		GeneratorModel:           "gpt-4o-mini",
		GeneratorTimeoutMS:       20_000,
		MaxConcurrentGenerations: runtime.NumCPU() * 2,
		StoreBackend:             StoreBackendMemory,
		RedisAddr:                "localhost:6379",
		SessionTTLMinutes:        1_440,
		SessionShardCount:        8,
	}
	return c
}
