// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/innerlens/innerlens/internal/adapters/repository"
	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/internal/domain/scenario"
	"github.com/innerlens/innerlens/internal/i18n"
	"github.com/innerlens/innerlens/pkg/logger"
	"github.com/innerlens/innerlens/pkg/metrics"
)

// StoreBackend selects where sessions live.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

// Service implements the API dependencies for the assessment system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	resolver  *scenario.Resolver
	generator scenario.Generator

	// Configuration
	defaultLocale string
	storeBackend  string
	redisAddr     string
	sessionTTL    time.Duration
	shardCount    int
	maxConcurrent int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithGenerator sets the external scenario generator. A nil generator leaves
// the service on template scenarios only.
func WithGenerator(gen scenario.Generator) Option {
	return func(s *Service) {
		s.generator = gen
	}
}

// WithDefaultLocale sets the locale used when a request carries none.
func WithDefaultLocale(locale string) Option {
	return func(s *Service) {
		if locale != "" {
			s.defaultLocale = locale
		}
	}
}

// WithMaxConcurrentGenerations caps in-flight generation requests per batch.
func WithMaxConcurrentGenerations(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrent = n
		}
	}
}

// WithMemoryStore selects the in-memory session store.
func WithMemoryStore(shardCount int) Option {
	return func(s *Service) {
		s.storeBackend = StoreBackendMemory
		if shardCount > 0 {
			s.shardCount = shardCount
		}
	}
}

// WithRedisStore selects the redis session store.
func WithRedisStore(addr string) Option {
	return func(s *Service) {
		if addr != "" {
			s.storeBackend = StoreBackendRedis
			s.redisAddr = addr
		}
	}
}

// WithSessionTTL expires idle sessions. Zero disables expiry.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl >= 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithStore injects a prebuilt session store, mainly for tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultLocale: i18n.DefaultLocale,
		storeBackend:  StoreBackendMemory,
		shardCount:    8,
		sessionTTL:    24 * time.Hour,
		maxConcurrent: 16,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting assessment service...")

	// Initialize the session store unless one was injected
	if s.store == nil {
		switch s.storeBackend {
		case StoreBackendRedis:
			client := redis.NewClient(&redis.Options{Addr: s.redisAddr})
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("connecting to redis at %s: %w", s.redisAddr, err)
			}
			s.store = repository.NewRedisStore(client, repository.WithRedisTTL(s.sessionTTL))
			s.logger.Info(ctx, "using redis session store", logger.String("addr", s.redisAddr))
		default:
			s.store = repository.NewMemoryStore(ctx,
				repository.WithShardCount(s.shardCount),
				repository.WithTTL(s.sessionTTL),
			)
			s.logger.Info(ctx, "using memory session store", logger.Int("shards", s.shardCount))
		}
	}

	s.resolver = scenario.NewResolver(
		scenario.WithGenerator(s.generator),
		scenario.WithMaxConcurrent(s.maxConcurrent),
		scenario.WithLogger(s.logger.Named("scenario")),
	)

	generatorReady := s.generator != nil && s.generator.Available()
	s.started = true
	s.logger.Info(ctx, "assessment service started",
		logger.String("storeBackend", s.storeBackend),
		logger.String("defaultLocale", s.defaultLocale),
		logger.Int("maxConcurrentGenerations", s.maxConcurrent),
		logger.Any("generatorAvailable", generatorReady),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping assessment service...")

	if s.store != nil {
		_ = s.store.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "assessment service stopped")
}

// locale falls back to the configured default and then normalizes to a
// supported bundle.
func (s *Service) locale(requested string) string {
	if requested == "" {
		requested = s.defaultLocale
	}
	return i18n.Normalize(requested)
}

// Questions returns the catalog in a fresh balanced shuffle.
func (s *Service) Questions(_ context.Context) []mbti.Question {
	return mbti.Shuffle(mbti.AllQuestions())
}

// GenerateScenarios resolves one scenario per question, degrading to
// localized templates whenever generation fails.
func (s *Service) GenerateScenarios(ctx context.Context, profile model.UserProfile, questions []mbti.Question, locale string) []model.Scenario {
	return s.resolver.Resolve(ctx, profile, questions, s.locale(locale))
}

// CalculateResult scores a completed answer set.
func (s *Service) CalculateResult(ctx context.Context, answers []mbti.Answer) (mbti.Result, error) {
	for _, a := range answers {
		if err := a.Validate(); err != nil {
			return mbti.Result{}, err
		}
	}
	result, err := mbti.Calculate(answers)
	if err != nil {
		return mbti.Result{}, err
	}
	metrics.RecordAssessmentCompleted(string(result.Type))
	return result, nil
}

// CreateSession starts a new assessment run: a fresh shuffled catalog with
// resolved scenarios, keyed by a new UUID.
func (s *Service) CreateSession(ctx context.Context, profile model.UserProfile, locale string) (*model.Session, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	questions := mbti.Shuffle(mbti.AllQuestions())
	now := time.Now().UTC()
	session := &model.Session{
		ID:        uuid.NewString(),
		Profile:   profile,
		Scenarios: s.resolver.Resolve(ctx, profile, questions, s.locale(locale)),
		Answers:   []mbti.Answer{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}
	metrics.RecordSessionCreated()

	s.logger.Debug(ctx, "session created",
		logger.String("sessionId", session.ID),
		logger.String("occupation", profile.Occupation),
		logger.Int("scenarios", len(session.Scenarios)),
	)
	return session, nil
}

// GetSession returns a session by id.
func (s *Service) GetSession(ctx context.Context, id string) (*model.Session, error) {
	return s.store.Get(ctx, id)
}

// RecordAnswers upserts answers into a session, later answers replacing
// earlier ones for the same question.
func (s *Service) RecordAnswers(ctx context.Context, id string, answers []mbti.Answer) (*model.Session, error) {
	for _, a := range answers {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, a := range answers {
		session.UpsertAnswer(a)
		metrics.RecordAnswerRecorded()
	}
	session.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession scores the session's answers and stores the result.
func (s *Service) CompleteSession(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := mbti.Calculate(session.Answers)
	if err != nil {
		return nil, err
	}
	session.Result = &result
	session.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	metrics.RecordAssessmentCompleted(string(result.Type))

	s.logger.Debug(ctx, "session completed",
		logger.String("sessionId", session.ID),
		logger.String("type", string(result.Type)),
		logger.Int("answers", len(session.Answers)),
	)
	return session, nil
}

// DeleteSession removes a session, e.g. on retake.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordSessionDeleted()
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"storeBackend":  s.storeBackend,
		"defaultLocale": s.defaultLocale,
		"locales":       i18n.Locales(),
		"questionCount": len(mbti.AllQuestions()),
	}

	if s.started {
		activeSessions := s.store.Count(ctx)
		stats["activeSessions"] = activeSessions
		stats["generatorAvailable"] = s.generator != nil && s.generator.Available()

		// Update metrics
		metrics.UpdateActiveSessions(activeSessions)
	}

	return stats
}
