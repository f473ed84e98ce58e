package simulate

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/pkg/logger"
)

// answerStyle biases the answer values a respondent produces.
type answerStyle int

// Answering style cases.
const (
	styleDecisive   answerStyle = iota // mostly ±3
	styleLeaning                       // mostly ±2
	styleMild                          // mostly ±1
	styleAmbivalent                    // mostly 0
	styleScattered                     // uniform across -3..+3
	styleCount
)

var ageGroups = []string{
	model.AgeGroupTeen,
	model.AgeGroupYoungAdult,
	model.AgeGroupAdult,
	model.AgeGroupMature,
}

var occupations = []string{
	model.OccupationStudent,
	model.OccupationProfessional,
	model.OccupationFreelancer,
	model.OccupationOther,
}

var occupationDetails = []string{
	"", "computer science", "graphic design", "nursing", "carpentry", "finance",
}

var interestPool = []string{
	"music", "hiking", "reading", "gaming", "cooking", "photography", "travel",
}

// randomInt returns a uniform random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateRespondents creates the specified number of respondents with
// varied profiles and answering styles.
func generateRespondents(ctx context.Context, config *Config, stats *Stats) ([]Respondent, error) {
	logger.Get().Info(ctx, "generating respondents", logger.Int("count", config.Respondents))

	respondents := make([]Respondent, config.Respondents)
	for i := range respondents {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during respondent generation: %w", ctx.Err())
		default:
		}
		respondents[i] = Respondent{
			Profile: randomProfile(),
			Style:   answerStyle(randomInt(int(styleCount))),
		}
	}

	stats.RespondentsGenerated = len(respondents)
	logger.Get().Info(ctx, "generated respondents successfully", logger.Int("count", len(respondents)))
	return respondents, nil
}

// randomProfile builds a plausible personalization profile.
func randomProfile() model.UserProfile {
	interests := make([]string, 0, 3)
	for _, interest := range interestPool {
		if randomInt(3) == 0 {
			interests = append(interests, interest)
		}
	}
	if len(interests) == 0 {
		interests = append(interests, interestPool[randomInt(len(interestPool))])
	}

	return model.UserProfile{
		AgeGroup:         ageGroups[randomInt(len(ageGroups))],
		Occupation:       occupations[randomInt(len(occupations))],
		OccupationDetail: occupationDetails[randomInt(len(occupationDetails))],
		Interests:        interests,
	}
}

// answersFor produces one answer per scenario following the respondent's
// answering style. Most values match the style's magnitude; a minority are
// drawn uniformly so no respondent is perfectly consistent.
func answersFor(r Respondent, scenarios []model.Scenario) []mbti.Answer {
	answers := make([]mbti.Answer, len(scenarios))
	for i, sc := range scenarios {
		answers[i] = mbti.Answer{
			QuestionID: sc.QuestionID,
			Dimension:  sc.Dimension,
			Polarity:   sc.Polarity,
			Value:      r.Style.value(),
		}
	}
	return answers
}

// value draws a single answer value for the style.
func (s answerStyle) value() int {
	// One in four answers is uniform regardless of style.
	if randomInt(4) == 0 {
		return randomInt(mbti.MaxAnswerValue-mbti.MinAnswerValue+1) + mbti.MinAnswerValue
	}

	sign := 1
	if randomInt(2) == 0 {
		sign = -1
	}

	switch s {
	case styleDecisive:
		return sign * mbti.MaxAnswerValue
	case styleLeaning:
		return sign * 2
	case styleMild:
		return sign * 1
	case styleAmbivalent:
		return 0
	default:
		return randomInt(mbti.MaxAnswerValue-mbti.MinAnswerValue+1) + mbti.MinAnswerValue
	}
}
