// Package repository defines the session store interface and errors.
package repository

import "time"

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithShardCount sets the number of shards in the memory store.
func WithShardCount(n int) MemoryOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.shardCount = n
		}
	}
}

// WithTTL sets the session expiry. Zero disables expiry.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		if ttl >= 0 {
			s.ttl = ttl
		}
	}
}

// WithJanitorInterval sets how often expired sessions are swept.
func WithJanitorInterval(interval time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.janitorInterval = interval
		}
	}
}

// RedisOption applies a configuration option to the RedisStore.
type RedisOption func(*RedisStore)

// WithRedisTTL sets the session expiry for the redis backend. Zero disables
// expiry.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl >= 0 {
			s.ttl = ttl
		}
	}
}

// WithKeyPrefix overrides the redis key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}
