// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
)

// SessionDependencies defines the interface for the session lifecycle.
type SessionDependencies interface {
	CreateSession(ctx context.Context, profile model.UserProfile, locale string) (*model.Session, error)
	GetSession(ctx context.Context, id string) (*model.Session, error)
	RecordAnswers(ctx context.Context, id string, answers []mbti.Answer) (*model.Session, error)
	CompleteSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// SessionsHandler handles assessment session requests.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// createSessionRequest mirrors the wire schema for POST /sessions.
type createSessionRequest struct {
	model.UserProfile
	Locale string `json:"locale,omitempty"`
}

// answersRequest mirrors the wire schema for PUT /sessions/{id}/answers.
type answersRequest struct {
	Answers []mbti.Answer `json:"answers"`
}

// HandleSessions handles POST /sessions requests.
func (h *SessionsHandler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_sessions"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.UserProfile.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	session, err := h.deps.CreateSession(r.Context(), req.UserProfile, req.Locale)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// HandleSessionByID dispatches GET/DELETE /sessions/{id} and the answer and
// result subresources.
func (h *SessionsHandler) HandleSessionByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.sessions_by_id"
	path := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if path == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	id, sub, _ := strings.Cut(path, "/")
	if id == "" || strings.Contains(sub, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case sub == "" && r.Method == http.MethodDelete:
		h.handleDelete(w, r, id)
	case sub == "answers" && r.Method == http.MethodPut:
		h.handlePutAnswers(w, r, id)
	case sub == "result" && r.Method == http.MethodPost:
		h.handlePostResult(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *SessionsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_session"
	session, err := h.deps.GetSession(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *SessionsHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.delete_session"
	if err := h.deps.DeleteSession(r.Context(), id); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionsHandler) handlePutAnswers(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.put_session_answers"
	var req answersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	session, err := h.deps.RecordAnswers(r.Context(), id, req.Answers)
	if err != nil {
		switch {
		case isNotFound(err):
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		case isBadAnswerSet(err):
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *SessionsHandler) handlePostResult(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.post_session_result"
	session, err := h.deps.CompleteSession(r.Context(), id)
	if err != nil {
		switch {
		case isNotFound(err):
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		case isBadAnswerSet(err):
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, session)
}
