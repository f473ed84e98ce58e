// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/innerlens/innerlens/internal/adapters/repository"
	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Questions returns the catalog in balanced shuffled order.
	Questions(ctx context.Context) []mbti.Question

	// GenerateScenarios resolves one scenario per question. Total for valid
	// input: generation failures degrade to templates.
	GenerateScenarios(ctx context.Context, profile model.UserProfile, questions []mbti.Question, locale string) []model.Scenario

	// CalculateResult scores a completed answer set.
	CalculateResult(ctx context.Context, answers []mbti.Answer) (mbti.Result, error)

	// Session lifecycle operations.
	CreateSession(ctx context.Context, profile model.UserProfile, locale string) (*model.Session, error)
	GetSession(ctx context.Context, id string) (*model.Session, error)
	RecordAnswers(ctx context.Context, id string, answers []mbti.Answer) (*model.Session, error)
	CompleteSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	questionsHandler   *QuestionsHandler
	scenariosHandler   *ScenariosHandler
	calculateHandler   *CalculateHandler
	personalityHandler *PersonalityHandler
	sessionsHandler    *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		questionsHandler:   NewQuestionsHandler(deps),
		scenariosHandler:   NewScenariosHandler(deps),
		calculateHandler:   NewCalculateHandler(deps),
		personalityHandler: NewPersonalityHandler(),
		sessionsHandler:    NewSessionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/questions", MetricsMiddleware(s.questionsHandler.HandleGetQuestions, "questions"))
	mux.HandleFunc("/scenarios", MetricsMiddleware(s.scenariosHandler.HandlePostScenarios, "scenarios"))
	mux.HandleFunc("/calculate", MetricsMiddleware(s.calculateHandler.HandlePostCalculate, "calculate"))
	mux.HandleFunc("/personality/", MetricsMiddleware(s.personalityHandler.HandleGetPersonality, "personality"))
	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandleSessions, "sessions"))
	mux.HandleFunc("/sessions/", MetricsMiddleware(s.sessionsHandler.HandleSessionByID, "sessions"))
}

// scenariosRequest mirrors the wire schema for POST /scenarios.
type scenariosRequest struct {
	model.UserProfile
	Locale string `json:"locale,omitempty"`
}

// calculateRequest mirrors the wire schema for POST /calculate.
type calculateRequest struct {
	Answers []mbti.Answer `json:"answers"`
	Locale  string        `json:"locale,omitempty"`
}

// calculateResponse is the scored result plus the matching type metadata,
// per-dimension strength labels, the strongest preference, and one localized
// insight sentence per answer in answer order.
type calculateResponse struct {
	mbti.Result
	Personality mbti.TypeInfo             `json:"personality"`
	Strengths   map[mbti.Dimension]string `json:"strengths"`
	Strongest   strongestPreference       `json:"strongest"`
	Insights    []string                  `json:"insights"`
}

// strongestPreference names the axis with the largest deviation from
// neutral, its dominant trait, and the strength bucket of that deviation.
type strongestPreference struct {
	Dimension mbti.Dimension `json:"dimension"`
	Trait     mbti.Trait     `json:"trait"`
	Label     string         `json:"label"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// isBadAnswerSet reports whether scoring rejected the answers as a contract
// violation on the caller's side.
func isBadAnswerSet(err error) bool {
	return errors.Is(err, mbti.ErrUnknownDimension) ||
		errors.Is(err, mbti.ErrUnknownPolarity) ||
		errors.Is(err, mbti.ErrValueOutOfRange) ||
		errors.Is(err, mbti.ErrMissingQuestionID)
}
