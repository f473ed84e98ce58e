// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/innerlens/innerlens/internal/domain/mbti"
)

// QuestionsDependencies defines the interface for question retrieval.
type QuestionsDependencies interface {
	Questions(ctx context.Context) []mbti.Question
}

// QuestionsHandler handles question catalog requests.
type QuestionsHandler struct {
	deps QuestionsDependencies
}

// NewQuestionsHandler creates a new questions handler.
func NewQuestionsHandler(deps QuestionsDependencies) *QuestionsHandler {
	return &QuestionsHandler{deps: deps}
}

// HandleGetQuestions handles GET /questions requests. Every call returns the
// full catalog in a fresh balanced shuffle.
func (h *QuestionsHandler) HandleGetQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Questions(r.Context()))
}
