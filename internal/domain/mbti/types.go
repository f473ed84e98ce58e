// Package mbti contains the assessment core: the question catalog, the
// balanced shuffler, the answer scorer, and the insight classifier.
package mbti

import "fmt"

// Dimension identifies one of the four trait axes.
type Dimension string

// The four dimensions, in canonical presentation order.
const (
	DimensionEI Dimension = "EI"
	DimensionSN Dimension = "SN"
	DimensionTF Dimension = "TF"
	DimensionJP Dimension = "JP"
)

// Dimensions lists all axes in canonical order (EI, SN, TF, JP). The order
// matters: it drives interleaving, type-letter concatenation, and tie-breaks.
func Dimensions() []Dimension {
	return []Dimension{DimensionEI, DimensionSN, DimensionTF, DimensionJP}
}

// Valid reports whether d is one of the four known axes.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionEI, DimensionSN, DimensionTF, DimensionJP:
		return true
	default:
		return false
	}
}

// Trait is one pole of a dimension.
type Trait string

// Trait letters.
const (
	TraitE Trait = "E"
	TraitI Trait = "I"
	TraitS Trait = "S"
	TraitN Trait = "N"
	TraitT Trait = "T"
	TraitF Trait = "F"
	TraitJ Trait = "J"
	TraitP Trait = "P"
)

// Traits returns the (first, second) trait pair for a dimension. The switch
// is exhaustive over the closed Dimension set; an unknown dimension is a
// contract violation and fails loudly instead of defaulting.
func (d Dimension) Traits() (first, second Trait, err error) {
	switch d {
	case DimensionEI:
		return TraitE, TraitI, nil
	case DimensionSN:
		return TraitS, TraitN, nil
	case DimensionTF:
		return TraitT, TraitF, nil
	case DimensionJP:
		return TraitJ, TraitP, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDimension, string(d))
	}
}

// Polarity encodes whether agreement with a question favors the dimension's
// first trait (positive) or its second trait (negative).
type Polarity string

// Polarity values.
const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// Valid reports whether p is a known polarity.
func (p Polarity) Valid() bool {
	return p == PolarityPositive || p == PolarityNegative
}

// Question is a single scored statement from the catalog.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
	Polarity  Polarity  `json:"polarity"`
}

// Answer value bounds on the slider scale.
const (
	MinAnswerValue = -3
	MaxAnswerValue = 3
)

// Answer is a single bounded-strength response to a question.
type Answer struct {
	QuestionID string    `json:"questionId"`
	Dimension  Dimension `json:"dimension"`
	Value      int       `json:"value"` // -3 .. +3
	Polarity   Polarity  `json:"polarity"`
}

// Validate checks the answer against the closed catalog contracts.
func (a Answer) Validate() error {
	if a.QuestionID == "" {
		return ErrMissingQuestionID
	}
	if !a.Dimension.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, string(a.Dimension))
	}
	if !a.Polarity.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPolarity, string(a.Polarity))
	}
	if a.Value < MinAnswerValue || a.Value > MaxAnswerValue {
		return fmt.Errorf("%w: %d", ErrValueOutOfRange, a.Value)
	}
	return nil
}

// DimensionScore holds the accumulated trait totals for one axis.
// Percentage is the integer share of the first trait, 0..100, and is exactly
// 50 when both totals are zero.
type DimensionScore struct {
	Dimension   Dimension `json:"dimension"`
	FirstTrait  Trait     `json:"firstTrait"`
	SecondTrait Trait     `json:"secondTrait"`
	FirstScore  int       `json:"firstScore"`
	SecondScore int       `json:"secondScore"`
	Percentage  int       `json:"percentage"`
}

// Type is a four-letter personality code such as "INTJ".
type Type string

// Result is the immutable outcome of a completed assessment.
type Result struct {
	Type    Type                          `json:"type"`
	Scores  map[Dimension]DimensionScore  `json:"scores"`
	Answers []Answer                      `json:"answers"`
}
