package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if INNERLENS_CONFIG is set
//  3. env (prefix INNERLENS_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("INNERLENS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: INNERLENS_ADDR, INNERLENS_STORE_BACKEND, ...
	// Map env keys like INNERLENS_STORE_BACKEND -> store_backend (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("INNERLENS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "innerlens_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendRedis:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.StoreBackend)
	}
	if c.StoreBackend == StoreBackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("%w: redis_addr must not be empty for the redis backend", ErrInvalidConfig)
	}
	if c.GeneratorTimeoutMS <= 0 {
		return fmt.Errorf("%w: generator_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.MaxConcurrentGenerations <= 0 {
		return fmt.Errorf("%w: max_concurrent_generations must be positive", ErrInvalidConfig)
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("%w: session_ttl_minutes must not be negative", ErrInvalidConfig)
	}
	if c.SessionShardCount <= 0 {
		return fmt.Errorf("%w: session_shard_count must be positive", ErrInvalidConfig)
	}
	return nil
}
