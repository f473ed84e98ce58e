// Package scenario turns questions into left/right scenario pairs, either
// through an external generator or a deterministic template fallback.
package scenario

import (
	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/internal/i18n"
)

// Fallback derives a scenario pair from the fixed template for the question's
// (dimension, polarity) cell, substituting a single context word chosen by
// the profile's occupation. It is total: every valid question/profile pair
// yields non-empty text, which makes it the guaranteed floor when external
// generation is unavailable or fails.
func Fallback(q mbti.Question, profile model.UserProfile, locale string) model.Scenario {
	contextKey := "meeting"
	if profile.IsStudent() {
		contextKey = "class"
	}
	context := i18n.T(locale, "scenarios.context."+contextKey, nil)

	base := "scenarios.fallback." + string(q.Dimension) + "." + string(q.Polarity)
	params := map[string]string{"context": context}

	return model.Scenario{
		QuestionID:    q.ID,
		LeftScenario:  i18n.T(locale, base+".left", params),
		RightScenario: i18n.T(locale, base+".right", params),
		Dimension:     q.Dimension,
		Polarity:      q.Polarity,
	}
}
