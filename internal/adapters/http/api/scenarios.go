// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
)

// ScenariosDependencies defines the interface for scenario generation.
type ScenariosDependencies interface {
	Questions(ctx context.Context) []mbti.Question
	GenerateScenarios(ctx context.Context, profile model.UserProfile, questions []mbti.Question, locale string) []model.Scenario
}

// ScenariosHandler handles scenario generation requests.
type ScenariosHandler struct {
	deps ScenariosDependencies
}

// NewScenariosHandler creates a new scenarios handler.
func NewScenariosHandler(deps ScenariosDependencies) *ScenariosHandler {
	return &ScenariosHandler{deps: deps}
}

// HandlePostScenarios handles POST /scenarios requests. The response carries
// one scenario per catalog question in balanced shuffled order; generation
// failures degrade to localized templates, so the call never fails for a
// valid profile.
func (h *ScenariosHandler) HandlePostScenarios(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_scenarios"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scenariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.UserProfile.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	questions := h.deps.Questions(r.Context())
	scenarios := h.deps.GenerateScenarios(r.Context(), req.UserProfile, questions, req.Locale)
	writeJSON(w, http.StatusOK, scenarios)
}
