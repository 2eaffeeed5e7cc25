package store

import (
	"context"
	"errors"

	quizsession "github.com/remaimber-it/quiz-backend/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz-backend/internal/domain/selection"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store keeps the live state of selections and sessions. Finished sessions
// are removed on restart; nothing here is a history.
type Store interface {
	SaveSelection(ctx context.Context, sel *selection.Selection) error
	GetSelection(ctx context.Context, id string) (*selection.Selection, error)

	SaveSession(ctx context.Context, session *quizsession.QuizSession) error
	GetSession(ctx context.Context, id string) (*quizsession.QuizSession, error)
	DeleteSession(ctx context.Context, id string) error
}
