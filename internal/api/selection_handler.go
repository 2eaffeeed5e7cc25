package api

import (
	"errors"
	"net/http"

	"github.com/remaimber-it/quiz-backend/internal/domain/selection"
)

// ── Request / Response types ────────────────────────────────────────────────

type ChooseCategoryRequest struct {
	Category string `json:"category" example:"HTML"`
}

func (r *ChooseCategoryRequest) Validate() error {
	if r.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

type ChooseDifficultyRequest struct {
	Difficulty string `json:"difficulty" example:"medium"`
}

func (r *ChooseDifficultyRequest) Validate() error {
	if r.Difficulty == "" {
		return errors.New("difficulty is required")
	}
	return nil
}

type SelectionResponse struct {
	ID                    string   `json:"id" example:"6f1c2a9e-5b0d-4e59-9a57-1f0d3f4b8c21"`
	Category              string   `json:"category" example:"HTML"`
	Difficulty            string   `json:"difficulty" example:"medium"`
	AvailableDifficulties []string `json:"available_difficulties" example:"easy,medium,hard"`
	SessionID             string   `json:"session_id,omitempty" example:"0b7e3c55-2d4f-4a57-8f7e-5c3a1e6d9b40"`
}

func toSelectionResponse(sel *selection.Selection) SelectionResponse {
	available := sel.AvailableDifficulties
	if available == nil {
		available = []string{}
	}
	return SelectionResponse{
		ID:                    sel.ID,
		Category:              sel.Category,
		Difficulty:            sel.Difficulty,
		AvailableDifficulties: available,
		SessionID:             sel.SessionID,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSelection starts an empty selection.
// @Summary      Create a selection
// @Tags         Selections
// @Produce      json
// @Success      201  {object}  SelectionResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /selections [post]
func (h *Handler) createSelection(w http.ResponseWriter, r *http.Request) {
	sel, err := h.quiz.CreateSelection(r.Context())
	if h.handleStoreError(w, err, "selection") {
		return
	}

	respondJSON(w, http.StatusCreated, toSelectionResponse(sel))
}

// getSelection returns the current choices.
// @Summary      Get a selection
// @Tags         Selections
// @Produce      json
// @Param        selectionID  path      string  true  "Selection ID"
// @Success      200          {object}  SelectionResponse
// @Failure      404          {object}  ErrorResponse
// @Router       /selections/{selectionID} [get]
func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	sel, err := h.quiz.GetSelection(r.Context(), r.PathValue("selectionID"))
	if h.handleStoreError(w, err, "selection") {
		return
	}

	respondJSON(w, http.StatusOK, toSelectionResponse(sel))
}

// chooseCategory sets the category.
// @Summary      Choose a category
// @Description  Clears the difficulty and lists the ones the category supports. The Random category starts a quiz immediately; session_id is then set.
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        selectionID  path      string                 true  "Selection ID"
// @Param        body         body      ChooseCategoryRequest  true  "Category"
// @Success      200          {object}  SelectionResponse
// @Failure      400          {object}  ErrorResponse  "unknown category"
// @Failure      404          {object}  ErrorResponse
// @Failure      409          {object}  ErrorResponse  "quiz already running"
// @Router       /selections/{selectionID}/category [put]
func (h *Handler) chooseCategory(w http.ResponseWriter, r *http.Request) {
	var req ChooseCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sel, err := h.quiz.ChooseCategory(r.Context(), r.PathValue("selectionID"), req.Category)
	if h.handleQuizError(w, err, "selection") {
		return
	}

	respondJSON(w, http.StatusOK, toSelectionResponse(sel))
}

// chooseDifficulty sets the difficulty and starts the quiz.
// @Summary      Choose a difficulty
// @Tags         Selections
// @Accept       json
// @Produce      json
// @Param        selectionID  path      string                   true  "Selection ID"
// @Param        body         body      ChooseDifficultyRequest  true  "Difficulty"
// @Success      200          {object}  SelectionResponse
// @Failure      400          {object}  ErrorResponse  "difficulty not available"
// @Failure      404          {object}  ErrorResponse
// @Failure      409          {object}  ErrorResponse  "no category chosen or quiz already running"
// @Router       /selections/{selectionID}/difficulty [put]
func (h *Handler) chooseDifficulty(w http.ResponseWriter, r *http.Request) {
	var req ChooseDifficultyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sel, err := h.quiz.ChooseDifficulty(r.Context(), r.PathValue("selectionID"), req.Difficulty)
	if h.handleQuizError(w, err, "selection") {
		return
	}

	respondJSON(w, http.StatusOK, toSelectionResponse(sel))
}

// restartSelection clears the selection.
// @Summary      Restart a selection
// @Description  Clears both choices and discards the quiz started from this selection, if any.
// @Tags         Selections
// @Produce      json
// @Param        selectionID  path      string  true  "Selection ID"
// @Success      200          {object}  SelectionResponse
// @Failure      404          {object}  ErrorResponse
// @Router       /selections/{selectionID}/restart [post]
func (h *Handler) restartSelection(w http.ResponseWriter, r *http.Request) {
	sel, err := h.quiz.RestartSelection(r.Context(), r.PathValue("selectionID"))
	if h.handleStoreError(w, err, "selection") {
		return
	}

	respondJSON(w, http.StatusOK, toSelectionResponse(sel))
}
