package mbti

import (
	"math/rand"
	"time"
)

// ShuffleOption applies a configuration option to the shuffler.
type ShuffleOption func(*shuffler)

// WithRand sets the random source used for shuffling. Tests inject a seeded
// source for determinism.
func WithRand(rng *rand.Rand) ShuffleOption {
	return func(s *shuffler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

type shuffler struct {
	rng *rand.Rand
}

// Shuffle returns a reordering of questions that randomizes order within each
// dimension group independently, then interleaves the groups round-robin in
// canonical dimension order so consecutive positions cycle through the axes
// while every group still has unconsumed members. Questions whose dimension
// is not one of the four axes are appended after the interleave. The output
// is always a permutation of the input; empty input yields empty output.
func Shuffle(questions []Question, opts ...ShuffleOption) []Question {
	s := &shuffler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // presentation-order shuffling, not security
	}
	for _, opt := range opts {
		opt(s)
	}

	groups := make(map[Dimension][]Question, len(Dimensions()))
	var leftover []Question
	for _, q := range questions {
		if !q.Dimension.Valid() {
			leftover = append(leftover, q)
			continue
		}
		groups[q.Dimension] = append(groups[q.Dimension], q)
	}

	// Uniform Fisher-Yates per group.
	for _, g := range groups {
		s.rng.Shuffle(len(g), func(i, j int) {
			g[i], g[j] = g[j], g[i]
		})
	}

	maxLen := 0
	for _, g := range groups {
		if len(g) > maxLen {
			maxLen = len(g)
		}
	}

	out := make([]Question, 0, len(questions))
	for i := 0; i < maxLen; i++ {
		for _, dim := range Dimensions() {
			if g := groups[dim]; i < len(g) {
				out = append(out, g[i])
			}
		}
	}

	// Questions outside the four axes cannot join the interleave; shuffle
	// and append them so the output stays a permutation of the input.
	s.rng.Shuffle(len(leftover), func(i, j int) {
		leftover[i], leftover[j] = leftover[j], leftover[i]
	})
	out = append(out, leftover...)
	return out
}
