package model

import (
	"time"

	"github.com/innerlens/innerlens/internal/domain/mbti"
)

// Session is the explicit, store-backed state of one assessment run: created
// on profile submission, mutated while answers arrive, cleared on retake.
// Core computations never depend on how sessions are stored; they receive
// the session's data as plain values.
type Session struct {
	ID        string           `json:"id"`
	Profile   UserProfile      `json:"profile"`
	Scenarios []Scenario       `json:"scenarios,omitempty"`
	Answers   []mbti.Answer    `json:"answers"`
	Result    *mbti.Result     `json:"result,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// UpsertAnswer records an answer, replacing any earlier answer for the same
// question while keeping the original insertion position. At most one answer
// exists per question id.
func (s *Session) UpsertAnswer(a mbti.Answer) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == a.QuestionID {
			s.Answers[i] = a
			return
		}
	}
	s.Answers = append(s.Answers, a)
}

// Clone returns a deep copy so stores can hand out sessions without sharing
// mutable slices with callers.
func (s Session) Clone() Session {
	out := s
	if s.Scenarios != nil {
		out.Scenarios = make([]Scenario, len(s.Scenarios))
		copy(out.Scenarios, s.Scenarios)
	}
	if s.Answers != nil {
		out.Answers = make([]mbti.Answer, len(s.Answers))
		copy(out.Answers, s.Answers)
	}
	if s.Result != nil {
		r := *s.Result
		if s.Result.Answers != nil {
			r.Answers = make([]mbti.Answer, len(s.Result.Answers))
			copy(r.Answers, s.Result.Answers)
		}
		if s.Result.Scores != nil {
			r.Scores = make(map[mbti.Dimension]mbti.DimensionScore, len(s.Result.Scores))
			for k, v := range s.Result.Scores {
				r.Scores[k] = v
			}
		}
		out.Result = &r
	}
	return out
}
