package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/pkg/metrics"
)

// Sharded, in-memory Store implementation.
//
// Sessions are bucketed by FNV-1a hash of the id so concurrent requests for
// different sessions rarely contend. A background janitor sweeps expired
// sessions and keeps the active-session gauge current.

const (
	defaultShardCount      = 8
	defaultJanitorInterval = 1 * time.Minute
)

type memoryEntry struct {
	session   *model.Session
	expiresAt time.Time // zero means no expiry
}

type memoryShard struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// MemoryStore keeps sessions in sharded maps.
type MemoryStore struct {
	shardCount      int
	ttl             time.Duration
	janitorInterval time.Duration
	shards          []*memoryShard

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore constructs a memory store with configuration options.
func NewMemoryStore(ctx context.Context, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		shardCount:      defaultShardCount,
		janitorInterval: defaultJanitorInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.shards = make([]*memoryShard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &memoryShard{entries: make(map[string]memoryEntry)}
	}

	s.stopChan = make(chan struct{})
	s.startJanitor(ctx)

	return s
}

func (s *MemoryStore) shardFor(id string) *memoryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return s.shards[int(h.Sum32())%s.shardCount]
}

func (s *MemoryStore) expiry(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

// startJanitor starts a background goroutine that sweeps expired sessions at
// the configured interval.
func (s *MemoryStore) startJanitor(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.janitorInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.sweep(time.Now())
			}
		}
	}()
}

// sweep removes expired entries and refreshes the active-session gauge.
func (s *MemoryStore) sweep(now time.Time) {
	live := 0
	for _, shard := range s.shards {
		shard.mu.Lock()
		for id, e := range shard.entries {
			if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
				delete(shard.entries, id)
				continue
			}
			live++
		}
		shard.mu.Unlock()
	}
	metrics.UpdateActiveSessions(live)
}

// Close gracefully shuts down the janitor goroutine.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
	return nil
}

// Create implements Store.Create.
func (s *MemoryStore) Create(_ context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrMissingSession
	}

	now := time.Now()
	shard := s.shardFor(session.ID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if e, ok := shard.entries[session.ID]; ok {
		if e.expiresAt.IsZero() || now.Before(e.expiresAt) {
			return ErrAlreadyExists
		}
		// Expired but not yet swept; the id is free again.
	}
	cloned := session.Clone()
	shard.entries[session.ID] = memoryEntry{
		session:   &cloned,
		expiresAt: s.expiry(now),
	}
	return nil
}

// Get implements Store.Get.
func (s *MemoryStore) Get(_ context.Context, id string) (*model.Session, error) {
	now := time.Now()
	shard := s.shardFor(id)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	e, ok := shard.entries[id]
	if !ok || (!e.expiresAt.IsZero() && now.After(e.expiresAt)) {
		return nil, ErrNotFound
	}
	cloned := e.session.Clone()
	return &cloned, nil
}

// Save implements Store.Save.
func (s *MemoryStore) Save(_ context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrMissingSession
	}

	now := time.Now()
	shard := s.shardFor(session.ID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	e, ok := shard.entries[session.ID]
	if !ok || (!e.expiresAt.IsZero() && now.After(e.expiresAt)) {
		return ErrNotFound
	}
	cloned := session.Clone()
	shard.entries[session.ID] = memoryEntry{
		session:   &cloned,
		expiresAt: s.expiry(now),
	}
	return nil
}

// Delete implements Store.Delete.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	shard := s.shardFor(id)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, ok := shard.entries[id]; !ok {
		return ErrNotFound
	}
	delete(shard.entries, id)
	return nil
}

// Count implements Store.Count.
func (s *MemoryStore) Count(_ context.Context) int {
	now := time.Now()
	total := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		for _, e := range shard.entries {
			if e.expiresAt.IsZero() || now.Before(e.expiresAt) {
				total++
			}
		}
		shard.mu.RUnlock()
	}
	return total
}
