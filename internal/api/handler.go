// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/remaimber-it/quiz-backend/internal/domain/selection"
	"github.com/remaimber-it/quiz-backend/internal/service"
	"github.com/remaimber-it/quiz-backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	quiz   *service.QuizService
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(quiz *service.QuizService, logger *slog.Logger) *Handler {
	return &Handler{
		quiz:   quiz,
		logger: logger,
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
}

// Validator is implemented by request bodies that check their own fields.
type Validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes the request body into v. Returns false if a response
// was already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v Validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleQuizError maps domain and service errors, then falls back to
// handleStoreError.
func (h *Handler) handleQuizError(w http.ResponseWriter, err error, entity string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, selection.ErrUnknownCategory), errors.Is(err, selection.ErrUnknownDifficulty):
		respondError(w, http.StatusBadRequest, err.Error())
		return true
	case errors.Is(err, selection.ErrNoCategory), errors.Is(err, selection.ErrLocked),
		errors.Is(err, service.ErrNotFinished), errors.Is(err, service.ErrCannotRetry):
		respondError(w, http.StatusConflict, err.Error())
		return true
	}
	return h.handleStoreError(w, err, entity)
}
