// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	quizsession "github.com/remaimber-it/quiz-backend/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
	"github.com/remaimber-it/quiz-backend/internal/domain/selection"
)

const schema = `
CREATE TABLE IF NOT EXISTS selections (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    available_difficulties TEXT NOT NULL,
    session_id TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    selection_id TEXT NOT NULL,
    category TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    state TEXT NOT NULL,
    generation INTEGER NOT NULL,
    position INTEGER NOT NULL,
    finished INTEGER NOT NULL,
    error TEXT NOT NULL,
    questions TEXT NOT NULL,
    answers TEXT NOT NULL,
    results TEXT NOT NULL
);
`

var _ Store = (*SQLiteStore)(nil)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath. ":memory:" gives a
// private in-memory database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Every pooled connection to ":memory:" would be a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Selections
// ============================================================================

func (s *SQLiteStore) SaveSelection(ctx context.Context, sel *selection.Selection) error {
	available, err := json.Marshal(sel.AvailableDifficulties)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO selections (id, category, difficulty, available_difficulties, session_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			difficulty = excluded.difficulty,
			available_difficulties = excluded.available_difficulties,
			session_id = excluded.session_id
	`, sel.ID, sel.Category, sel.Difficulty, string(available), sel.SessionID)
	return err
}

func (s *SQLiteStore) GetSelection(ctx context.Context, id string) (*selection.Selection, error) {
	var sel selection.Selection
	var available string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, category, difficulty, available_difficulties, session_id FROM selections WHERE id = ?", id,
	).Scan(&sel.ID, &sel.Category, &sel.Difficulty, &available, &sel.SessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(available), &sel.AvailableDifficulties); err != nil {
		return nil, fmt.Errorf("selection %s: corrupt difficulties: %w", id, err)
	}
	return &sel, nil
}

// ============================================================================
// Sessions
// ============================================================================

// storedQuestion is the column format of a question; the domain type has no
// JSON tags on purpose.
type storedQuestion struct {
	ID          int            `json:"id"`
	Prompt      string         `json:"prompt"`
	Category    string         `json:"category,omitempty"`
	Difficulty  string         `json:"difficulty,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
	Choices     []storedChoice `json:"choices"`
}

type storedChoice struct {
	Text    string `json:"text,omitempty"`
	Present bool   `json:"present"`
	Correct bool   `json:"correct"`
}

func toStoredQuestions(qs []questionbank.Question) []storedQuestion {
	out := make([]storedQuestion, len(qs))
	for i, q := range qs {
		sq := storedQuestion{
			ID:          q.ID,
			Prompt:      q.Prompt,
			Category:    q.Category,
			Difficulty:  q.Difficulty,
			Explanation: q.Explanation,
			Choices:     make([]storedChoice, len(q.Choices)),
		}
		for j, c := range q.Choices {
			sq.Choices[j] = storedChoice{Text: c.Text, Present: c.Present, Correct: c.Correct}
		}
		out[i] = sq
	}
	return out
}

func fromStoredQuestions(sqs []storedQuestion) []questionbank.Question {
	out := make([]questionbank.Question, len(sqs))
	for i, sq := range sqs {
		q := questionbank.Question{
			ID:          sq.ID,
			Prompt:      sq.Prompt,
			Category:    sq.Category,
			Difficulty:  sq.Difficulty,
			Explanation: sq.Explanation,
		}
		for j, c := range sq.Choices {
			if j >= questionbank.MaxChoices {
				break
			}
			q.Choices[j] = questionbank.Choice{Text: c.Text, Present: c.Present, Correct: c.Correct}
		}
		out[i] = q
	}
	return out
}

func (s *SQLiteStore) SaveSession(ctx context.Context, session *quizsession.QuizSession) error {
	questionsJSON, err := json.Marshal(toStoredQuestions(session.Questions))
	if err != nil {
		return err
	}
	answersJSON, err := json.Marshal(session.Answers)
	if err != nil {
		return err
	}
	resultsJSON, err := json.Marshal(session.Results)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, selection_id, category, difficulty, state, generation,
			position, finished, error, questions, answers, results)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			generation = excluded.generation,
			position = excluded.position,
			finished = excluded.finished,
			error = excluded.error,
			questions = excluded.questions,
			answers = excluded.answers,
			results = excluded.results
	`,
		session.ID, session.SelectionID, session.Category, session.Difficulty,
		string(session.State), int64(session.Generation), session.Position, session.Finished,
		session.Error, string(questionsJSON), string(answersJSON), string(resultsJSON),
	)
	return err
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*quizsession.QuizSession, error) {
	var session quizsession.QuizSession
	var state, questionsJSON, answersJSON, resultsJSON string
	var generation int64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, selection_id, category, difficulty, state, generation,
			position, finished, error, questions, answers, results
		FROM sessions WHERE id = ?`, id,
	).Scan(
		&session.ID, &session.SelectionID, &session.Category, &session.Difficulty,
		&state, &generation, &session.Position, &session.Finished, &session.Error,
		&questionsJSON, &answersJSON, &resultsJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session.State = quizsession.State(state)
	session.Generation = uint64(generation)

	var stored []storedQuestion
	if err := json.Unmarshal([]byte(questionsJSON), &stored); err != nil {
		return nil, fmt.Errorf("session %s: corrupt questions: %w", id, err)
	}
	if len(stored) > 0 {
		session.Questions = fromStoredQuestions(stored)
	}
	if err := json.Unmarshal([]byte(answersJSON), &session.Answers); err != nil {
		return nil, fmt.Errorf("session %s: corrupt answers: %w", id, err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &session.Results); err != nil {
		return nil, fmt.Errorf("session %s: corrupt results: %w", id, err)
	}

	return &session, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
