package api

import (
	"errors"
	"net/http"

	quizsession "github.com/remaimber-it/quiz-backend/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

// SubmitAnswerRequest names the chosen slot either by index (0 = answer_a)
// or by its key.
type SubmitAnswerRequest struct {
	Choice    *int   `json:"choice,omitempty" example:"1"`
	AnswerKey string `json:"answer_key,omitempty" example:"answer_b"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.Choice == nil && r.AnswerKey == "" {
		return errors.New("choice or answer_key is required")
	}
	if r.Choice != nil && r.AnswerKey != "" {
		return errors.New("send either choice or answer_key, not both")
	}
	if r.Choice != nil && (*r.Choice < 0 || *r.Choice >= questionbank.MaxChoices) {
		return errors.New("choice must be between 0 and 5")
	}
	if r.AnswerKey != "" {
		if _, ok := questionbank.SlotIndex(r.AnswerKey); !ok {
			return errors.New("answer_key must be answer_a … answer_f")
		}
	}
	return nil
}

// index returns the slot index. Only valid after Validate.
func (r *SubmitAnswerRequest) index() int {
	if r.Choice != nil {
		return *r.Choice
	}
	i, _ := questionbank.SlotIndex(r.AnswerKey)
	return i
}

type ChoiceResponse struct {
	Index int    `json:"index" example:"0"`
	Key   string `json:"key" example:"answer_a"`
	Text  string `json:"text" example:"<ul>"`
}

type QuestionResponse struct {
	ID      int              `json:"id" example:"981"`
	Number  int              `json:"number" example:"1"`
	Prompt  string           `json:"prompt" example:"Which tag creates an unordered list?"`
	Choices []ChoiceResponse `json:"choices"`
}

type SessionResponse struct {
	ID          string            `json:"id" example:"0b7e3c55-2d4f-4a57-8f7e-5c3a1e6d9b40"`
	SelectionID string            `json:"selection_id" example:"6f1c2a9e-5b0d-4e59-9a57-1f0d3f4b8c21"`
	Category    string            `json:"category" example:"HTML"`
	Difficulty  string            `json:"difficulty" example:"easy"`
	State       string            `json:"state" example:"active" enums:"loading,active,failed,finished"`
	Position    int               `json:"position" example:"0"`
	Total       int               `json:"total" example:"10"`
	Finished    bool              `json:"finished" example:"false"`
	Error       string            `json:"error,omitempty"`
	Question    *QuestionResponse `json:"question,omitempty"`
}

type SubmitAnswerResponse struct {
	Applied bool            `json:"applied" example:"true"`
	Session SessionResponse `json:"session"`
}

type ReviewResponse struct {
	Question      string `json:"question" example:"Which tag creates an unordered list?"`
	UserAnswer    string `json:"user_answer" example:"<ol>"`
	CorrectAnswer string `json:"correct_answer" example:"<ul>"`
	Correct       bool   `json:"correct" example:"false"`
	Explanation   string `json:"explanation,omitempty"`
}

type ReportResponse struct {
	SessionID string           `json:"session_id" example:"0b7e3c55-2d4f-4a57-8f7e-5c3a1e6d9b40"`
	Score     int              `json:"score" example:"6"`
	Total     int              `json:"total" example:"10"`
	Results   []ReviewResponse `json:"results"`
}

func toSessionResponse(s *quizsession.QuizSession) SessionResponse {
	resp := SessionResponse{
		ID:          s.ID,
		SelectionID: s.SelectionID,
		Category:    s.Category,
		Difficulty:  s.Difficulty,
		State:       string(s.State),
		Position:    s.Position,
		Total:       len(s.Questions),
		Finished:    s.Finished,
		Error:       s.Error,
	}

	if q, ok := s.Current(); ok {
		qr := &QuestionResponse{
			ID:      q.ID,
			Number:  s.Position + 1,
			Prompt:  q.Prompt,
			Choices: []ChoiceResponse{},
		}
		for _, i := range q.Offered() {
			qr.Choices = append(qr.Choices, ChoiceResponse{
				Index: i,
				Key:   questionbank.SlotKey(i),
				Text:  q.Choices[i].Text,
			})
		}
		resp.Question = qr
	}

	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the session state and the question awaiting an answer.
// @Summary      Get a quiz session
// @Description  With wait=true the call blocks until the pending question fetch resolves.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true   "Session ID"
// @Param        wait       query     bool    false  "Wait for the pending fetch"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionID")

	if r.URL.Query().Get("wait") == "true" {
		if err := h.quiz.WaitForSession(ctx, sessionID); err != nil {
			// client went away
			return
		}
	}

	session, err := h.quiz.GetSession(ctx, sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// submitAnswer records the answer to the current question.
// @Summary      Answer the current question
// @Description  applied is false when the session was not accepting answers (loading, failed or finished) or the slot is not offered.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Chosen slot"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, applied, err := h.quiz.SubmitAnswer(r.Context(), r.PathValue("sessionID"), req.index())
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Applied: applied,
		Session: toSessionResponse(session),
	})
}

// getReport returns the score and per-question review.
// @Summary      Get quiz results
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  ReportResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse  "quiz is not finished"
// @Router       /sessions/{sessionID}/report [get]
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	report, err := h.quiz.Report(r.Context(), sessionID)
	if h.handleQuizError(w, err, "session") {
		return
	}

	results := make([]ReviewResponse, len(report.Items))
	for i, item := range report.Items {
		results[i] = ReviewResponse{
			Question:      item.Prompt,
			UserAnswer:    item.UserAnswer,
			CorrectAnswer: item.CorrectAnswer,
			Correct:       item.Correct,
			Explanation:   item.Explanation,
		}
	}

	respondJSON(w, http.StatusOK, ReportResponse{
		SessionID: sessionID,
		Score:     report.Score,
		Total:     report.Total,
		Results:   results,
	})
}

// tryAgain fetches a fresh batch with the same category and difficulty.
// @Summary      Try the quiz again
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      202        {object}  SessionResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse  "quiz still running"
// @Router       /sessions/{sessionID}/try-again [post]
func (h *Handler) tryAgain(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.TryAgain(r.Context(), r.PathValue("sessionID"))
	if h.handleQuizError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusAccepted, toSessionResponse(session))
}

// restartSession discards the quiz and resets its selection.
// @Summary      Restart from category selection
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SelectionResponse
// @Success      204        "selection no longer exists"
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/restart [post]
func (h *Handler) restartSession(w http.ResponseWriter, r *http.Request) {
	sel, err := h.quiz.RestartSession(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	if sel == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, toSelectionResponse(sel))
}
