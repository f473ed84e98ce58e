package model

import "github.com/innerlens/innerlens/internal/domain/mbti"

// Scenario is a left/right pair of descriptive texts presented for one
// slider-style forced choice. LeftScenario corresponds to the extreme
// negative end of the answer scale (-3), RightScenario to the extreme
// positive end (+3). Dimension and Polarity are always copied from the
// source question; resolvers must never take them from generator output.
type Scenario struct {
	QuestionID    string         `json:"questionId"`
	LeftScenario  string         `json:"leftScenario"`
	RightScenario string         `json:"rightScenario"`
	Dimension     mbti.Dimension `json:"dimension"`
	Polarity      mbti.Polarity  `json:"polarity"`
}
