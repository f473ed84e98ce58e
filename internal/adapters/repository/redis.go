package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/innerlens/innerlens/internal/domain/model"
)

const defaultKeyPrefix = "innerlens:session:"

// RedisStore keeps sessions as JSON blobs in redis. Expiry is delegated to
// redis TTLs, so the store needs no janitor of its own.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore constructs a redis-backed store around an existing client.
// The caller owns the client's lifecycle except for Close, which closes it.
func NewRedisStore(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// Create implements Store.Create.
func (s *RedisStore) Create(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrMissingSession
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ok, err := s.client.SetNX(ctx, s.key(session.ID), raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

// Get implements Store.Get.
func (s *RedisStore) Get(ctx context.Context, id string) (*model.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Save implements Store.Save. The write refreshes the TTL.
func (s *RedisStore) Save(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrMissingSession
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	// XX makes the write a pure overwrite so saves cannot resurrect a
	// deleted or expired session.
	ok, err := s.client.SetXX(ctx, s.key(session.ID), raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete implements Store.Delete.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count implements Store.Count by scanning the session keyspace. The scan is
// cursor-based, so large keyspaces do not block redis.
func (s *RedisStore) Count(ctx context.Context) int {
	var cursor uint64
	total := 0
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 256).Result()
		if err != nil {
			return total
		}
		total += len(keys)
		cursor = next
		if cursor == 0 {
			return total
		}
	}
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
