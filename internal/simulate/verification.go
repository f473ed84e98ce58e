package simulate

import (
	"context"
	"fmt"
	"sort"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/pkg/logger"
)

// verifyResults recomputes every assessment locally and checks it against
// the result the service returned.
func verifyResults(ctx context.Context, config *Config, assessments []Assessment, stats *Stats) error {
	logger.Get().Info(ctx, "verifying results", logger.Int("assessments", len(assessments)))

	if len(assessments) == 0 {
		return fmt.Errorf("no assessments to verify")
	}

	stats.TypeDistribution = make(map[string]int)

	for i := range assessments {
		a := &assessments[i]
		if a.Result == nil {
			stats.ResultsMismatched++
			continue
		}

		want, err := mbti.Calculate(a.Answers)
		if err != nil {
			return fmt.Errorf("local recompute for session %s: %w", a.SessionID, err)
		}

		if err := compareResults(want, *a.Result); err != nil {
			stats.ResultsMismatched++
			logger.Get().Warn(ctx, "result mismatch",
				logger.String("sessionId", a.SessionID),
				logger.Error(err))
			continue
		}

		a.Verified = true
		stats.ResultsVerified++
		stats.TypeDistribution[string(a.Result.Type)]++
	}

	displayTypeDistribution(ctx, stats, config.Verbose)

	if stats.ResultsMismatched > 0 {
		return fmt.Errorf("%d of %d results did not match the local recompute", stats.ResultsMismatched, len(assessments))
	}

	logger.Get().Info(ctx, "result verification completed", logger.Int("verified", stats.ResultsVerified))
	return nil
}

// compareResults checks the service result against a locally computed one.
func compareResults(want, got mbti.Result) error {
	if want.Type != got.Type {
		return fmt.Errorf("type %q does not match locally computed %q", got.Type, want.Type)
	}
	for dim, wantScore := range want.Scores {
		gotScore, ok := got.Scores[dim]
		if !ok {
			return fmt.Errorf("missing score for dimension %s", dim)
		}
		if gotScore.Percentage != wantScore.Percentage {
			return fmt.Errorf("dimension %s percentage %d does not match locally computed %d",
				dim, gotScore.Percentage, wantScore.Percentage)
		}
	}
	return nil
}

// displayTypeDistribution logs how the simulated population scored.
func displayTypeDistribution(ctx context.Context, stats *Stats, verbose bool) {
	if len(stats.TypeDistribution) == 0 {
		return
	}

	types := make([]string, 0, len(stats.TypeDistribution))
	for t := range stats.TypeDistribution {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if stats.TypeDistribution[types[i]] != stats.TypeDistribution[types[j]] {
			return stats.TypeDistribution[types[i]] > stats.TypeDistribution[types[j]]
		}
		return types[i] < types[j]
	})

	logger.Get().Info(ctx, "type distribution", logger.Int("distinctTypes", len(types)))
	limit := len(types)
	if !verbose && limit > 5 {
		limit = 5
	}
	for _, t := range types[:limit] {
		count := stats.TypeDistribution[t]
		share := float64(count) / float64(stats.ResultsVerified) * PercentageMultiplier
		logger.Get().Info(ctx, "type share",
			logger.String("type", t),
			logger.Int("count", count),
			logger.Float64("percent", share))
	}
}
