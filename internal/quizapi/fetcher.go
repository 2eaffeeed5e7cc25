package quizapi

import (
	"context"

	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
)

// Filter narrows a fetch to one category and difficulty.
type Filter struct {
	Category   string
	Difficulty string
	Limit      int
}

// Fetcher retrieves batches of questions from a question bank.
// Implementations may call a remote API or return canned questions (for tests).
type Fetcher interface {
	FetchQuestions(ctx context.Context, f Filter) ([]questionbank.Question, error)
	FetchRandomQuestions(ctx context.Context, limit int) ([]questionbank.Question, error)
}
