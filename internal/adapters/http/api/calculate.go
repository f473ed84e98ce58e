// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/i18n"
)

// CalculateDependencies defines the interface for result calculation.
type CalculateDependencies interface {
	CalculateResult(ctx context.Context, answers []mbti.Answer) (mbti.Result, error)
}

// CalculateHandler handles result calculation requests.
type CalculateHandler struct {
	deps CalculateDependencies
}

// NewCalculateHandler creates a new calculate handler.
func NewCalculateHandler(deps CalculateDependencies) *CalculateHandler {
	return &CalculateHandler{deps: deps}
}

// HandlePostCalculate handles POST /calculate requests. An empty answer set
// is a client error at this boundary even though the scorer itself is total.
func (h *CalculateHandler) HandlePostCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_calculate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	result, err := h.deps.CalculateResult(r.Context(), req.Answers)
	if err != nil {
		if isBadAnswerSet(err) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	info, err := mbti.Info(result.Type)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	strengths := make(map[mbti.Dimension]string, len(result.Scores))
	for dim, ds := range result.Scores {
		strengths[dim] = mbti.StrengthLabel(ds.Percentage)
	}
	strongDim, strongTrait := mbti.StrongestDimension(result)

	writeJSON(w, http.StatusOK, calculateResponse{
		Result:      result,
		Personality: info,
		Strengths:   strengths,
		Strongest: strongestPreference{
			Dimension: strongDim,
			Trait:     strongTrait,
			Label:     mbti.StrengthLabel(result.Scores[strongDim].Percentage),
		},
		Insights: renderInsights(req.Answers, req.Locale),
	})
}

// renderInsights produces one localized sentence per answer describing which
// trait it favors and how strongly. Answers have been validated by the time
// this runs, so classification cannot fail.
func renderInsights(answers []mbti.Answer, locale string) []string {
	locale = i18n.Normalize(locale)
	insights := make([]string, 0, len(answers))
	for _, a := range answers {
		in, err := mbti.AnswerInsight(a)
		if err != nil {
			continue
		}
		insights = append(insights, i18n.T(locale, "insight.sentence", map[string]string{
			"adverb": i18n.T(locale, "insight.adverbs."+in.Adverb, nil),
			"trait":  i18n.T(locale, "insight.traits."+string(in.Favored), nil),
		}))
	}
	return insights
}
