package mbti

// Strength labels for the deviation of a percentage from the neutral 50.
const (
	StrengthSlight   = "Slight"
	StrengthModerate = "Moderate"
	StrengthClear    = "Clear"
	StrengthStrong   = "Strong"
)

// StrengthLabel buckets how far a dimension percentage sits from neutral.
// Boundaries are inclusive: deviations of exactly 10, 25 and 40 fall in the
// lower bucket.
func StrengthLabel(percentage int) string {
	deviation := percentage - neutralPercentage
	if deviation < 0 {
		deviation = -deviation
	}
	switch {
	case deviation <= 10:
		return StrengthSlight
	case deviation <= 25:
		return StrengthModerate
	case deviation <= 40:
		return StrengthClear
	default:
		return StrengthStrong
	}
}

// StrongestDimension selects the axis with the largest deviation from 50 and
// reports its dominant trait letter. Ties resolve to the earliest axis in
// canonical order, and the dominant trait follows the same >=50 rule as the
// type letters.
func StrongestDimension(r Result) (Dimension, Trait) {
	best := Dimensions()[0]
	bestDev := -1
	for _, dim := range Dimensions() {
		ds, ok := r.Scores[dim]
		if !ok {
			continue
		}
		dev := ds.Percentage - neutralPercentage
		if dev < 0 {
			dev = -dev
		}
		if dev > bestDev {
			best = dim
			bestDev = dev
		}
	}

	ds := r.Scores[best]
	if ds.Percentage >= neutralPercentage {
		return best, ds.FirstTrait
	}
	return best, ds.SecondTrait
}

// Insight describes which trait a single answer favors and how strongly.
type Insight struct {
	Adverb      string `json:"adverb"` // strongly, moderately, slightly
	Favored     Trait  `json:"favored"`
	FavoredName string `json:"favoredName"`
}

// Insight adverbs keyed by answer magnitude.
const (
	AdverbStrongly   = "strongly"
	AdverbModerately = "moderately"
	AdverbSlightly   = "slightly"
)

// AnswerInsight classifies a single answer: magnitude 3 maps to "strongly",
// 2 to "moderately", anything lower to "slightly", and the favored trait is
// resolved with the same polarity-sign rule the scorer uses.
func AnswerInsight(a Answer) (Insight, error) {
	first, second, err := a.Dimension.Traits()
	if err != nil {
		return Insight{}, err
	}

	favored := first
	if (a.Polarity == PolarityPositive) != (a.Value > 0) {
		favored = second
	}

	magnitude := a.Value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	adverb := AdverbSlightly
	switch magnitude {
	case 3:
		adverb = AdverbStrongly
	case 2:
		adverb = AdverbModerately
	}

	return Insight{
		Adverb:      adverb,
		Favored:     favored,
		FavoredName: TraitName(favored),
	}, nil
}

// TraitName returns the spelled-out name for a trait letter.
func TraitName(t Trait) string {
	switch t {
	case TraitE:
		return "Extraversion"
	case TraitI:
		return "Introversion"
	case TraitS:
		return "Sensing"
	case TraitN:
		return "Intuition"
	case TraitT:
		return "Thinking"
	case TraitF:
		return "Feeling"
	case TraitJ:
		return "Judging"
	case TraitP:
		return "Perceiving"
	default:
		return string(t)
	}
}
