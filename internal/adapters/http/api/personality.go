// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/innerlens/innerlens/internal/domain/mbti"
)

// PersonalityHandler handles personality type metadata requests.
type PersonalityHandler struct{}

// NewPersonalityHandler creates a new personality handler.
func NewPersonalityHandler() *PersonalityHandler {
	return &PersonalityHandler{}
}

// HandleGetPersonality handles GET /personality/{type} requests. The bare
// collection path lists all 16 types.
func (h *PersonalityHandler) HandleGetPersonality(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_personality"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /personality/
	path := strings.TrimPrefix(r.URL.Path, "/personality/")
	if path == "" {
		writeJSON(w, http.StatusOK, mbti.AllTypes())
		return
	}
	if strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	info, err := mbti.Info(mbti.Type(strings.ToUpper(path)))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, info)
}
