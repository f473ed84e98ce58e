package mbti

import "math"

// neutralPercentage is the share reported when a dimension has no signal.
const neutralPercentage = 50

// Calculate derives the four-axis profile and the categorical type from a set
// of answers. The function is pure: identical answer sets, in any order,
// produce identical results. An empty answer set is valid and resolves every
// axis to 50% and the type to "ESTJ" by the first-trait tie rule.
//
// Sign convention: for a positive-polarity answer, v > 0 credits |v| to the
// first trait and v <= 0 credits |v| to the second; negative polarity mirrors
// the mapping. A zero value therefore contributes to neither side.
func Calculate(answers []Answer) (Result, error) {
	totals := make(map[Trait]int, 8)

	for _, a := range answers {
		first, second, err := a.Dimension.Traits()
		if err != nil {
			return Result{}, err
		}
		credited := first
		if (a.Polarity == PolarityPositive) != (a.Value > 0) {
			credited = second
		}
		magnitude := a.Value
		if magnitude < 0 {
			magnitude = -magnitude
		}
		totals[credited] += magnitude
	}

	scores := make(map[Dimension]DimensionScore, len(Dimensions()))
	letters := make([]byte, 0, len(Dimensions()))
	for _, dim := range Dimensions() {
		first, second, err := dim.Traits()
		if err != nil {
			return Result{}, err
		}
		ds := dimensionScore(dim, first, second, totals[first], totals[second])
		scores[dim] = ds

		letter := ds.SecondTrait
		if ds.Percentage >= neutralPercentage {
			letter = ds.FirstTrait
		}
		letters = append(letters, letter[0])
	}

	out := Result{
		Type:    Type(letters),
		Scores:  scores,
		Answers: answers,
	}
	if out.Answers == nil {
		out.Answers = []Answer{}
	}
	return out, nil
}

func dimensionScore(dim Dimension, first, second Trait, firstScore, secondScore int) DimensionScore {
	pct := neutralPercentage
	if total := firstScore + secondScore; total > 0 {
		pct = int(math.Round(float64(firstScore) / float64(total) * 100))
	}
	return DimensionScore{
		Dimension:   dim,
		FirstTrait:  first,
		SecondTrait: second,
		FirstScore:  firstScore,
		SecondScore: secondScore,
		Percentage:  pct,
	}
}
