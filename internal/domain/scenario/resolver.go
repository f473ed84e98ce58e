package scenario

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/pkg/logger"
	"github.com/innerlens/innerlens/pkg/metrics"
)

// Default resolver configuration constants.
const (
	defaultMaxConcurrent = 16
)

// Generator produces one scenario pair for one question. Implementations
// wrap an external service; a returned error means this question falls back
// to the template strategy without affecting its siblings.
type Generator interface {
	// Available reports whether the generator is configured at all. When
	// false, Resolve skips generation wholesale.
	Available() bool

	// Generate returns the left (-3) and right (+3) scenario texts.
	Generate(ctx context.Context, profile model.UserProfile, q mbti.Question, locale string) (left, right string, err error)
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithGenerator sets the external generation capability.
func WithGenerator(gen Generator) Option {
	return func(r *Resolver) {
		r.gen = gen
	}
}

// WithMaxConcurrent bounds how many generation calls run in flight at once.
func WithMaxConcurrent(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxConcurrent = n
		}
	}
}

// WithLogger sets a custom logger for the resolver.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Resolver assembles one scenario per question, order-preserving. Each
// output's dimension and polarity are locked to its source question, never
// taken from generator output, so downstream scoring stays correct even if
// the generator mislabels a pairing.
type Resolver struct {
	gen           Generator
	maxConcurrent int
	logger        logger.Logger
}

// NewResolver creates a resolver with configuration options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		maxConcurrent: defaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns one scenario per question, in input order. Generation
// failures are recovered locally: each failed question falls back to the
// template strategy on its own, and the batch as a whole never fails.
func (r *Resolver) Resolve(ctx context.Context, profile model.UserProfile, questions []mbti.Question, locale string) []model.Scenario {
	out := make([]model.Scenario, len(questions))

	if r.gen == nil || !r.gen.Available() {
		if r.logger != nil {
			r.logger.Debug(ctx, "scenario generator unavailable, using fallback templates",
				logger.Int("questions", len(questions)),
			)
		}
		for i, q := range questions {
			out[i] = Fallback(q, profile, locale)
			metrics.RecordScenarioFallback()
		}
		return out
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrent)
	for i, q := range questions {
		g.Go(func() error {
			left, right, err := r.gen.Generate(gctx, profile, q, locale)
			if err != nil || strings.TrimSpace(left) == "" || strings.TrimSpace(right) == "" {
				if r.logger != nil {
					r.logger.Warn(gctx, "scenario generation failed, falling back",
						logger.String("questionId", q.ID),
						logger.Error(err),
					)
				}
				metrics.RecordScenarioFallback()
				out[i] = Fallback(q, profile, locale)
				return nil
			}
			metrics.RecordScenarioGenerated()
			out[i] = model.Scenario{
				QuestionID:    q.ID,
				LeftScenario:  left,
				RightScenario: right,
				Dimension:     q.Dimension,
				Polarity:      q.Polarity,
			}
			return nil
		})
	}
	// Tasks recover their own failures, so Wait never returns an error.
	_ = g.Wait()

	metrics.RecordGenerationLatency(float64(time.Since(start).Milliseconds()))
	return out
}
