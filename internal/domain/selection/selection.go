package selection

import (
	"errors"

	"github.com/remaimber-it/quiz-backend/internal/domain/catalog"
	"github.com/remaimber-it/quiz-backend/internal/id"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownDifficulty = errors.New("difficulty not available for category")
	ErrNoCategory        = errors.New("category must be chosen first")
	ErrLocked            = errors.New("selection already has a running quiz")
)

// Selection accumulates the two choices needed to start a quiz.
// Empty strings mean "not chosen yet".
type Selection struct {
	ID                    string
	Category              string
	Difficulty            string
	AvailableDifficulties []string
	SessionID             string // set once a quiz was started from this selection
}

func New() *Selection {
	return &Selection{
		ID:                    id.New(),
		AvailableDifficulties: []string{},
	}
}

// ChooseCategory sets the category and resets the difficulty. The random
// category has nothing to pick, so its synthetic difficulty is chosen too.
func (s *Selection) ChooseCategory(name string) error {
	if s.SessionID != "" {
		return ErrLocked
	}
	cat, ok := catalog.Lookup(name)
	if !ok {
		return ErrUnknownCategory
	}

	s.Category = cat.Name
	s.Difficulty = ""
	s.AvailableDifficulties = cat.Difficulties

	if catalog.IsRandom(cat.Name) {
		s.Difficulty = catalog.RandomDifficulty
	}
	return nil
}

func (s *Selection) ChooseDifficulty(difficulty string) error {
	if s.SessionID != "" {
		return ErrLocked
	}
	if s.Category == "" {
		return ErrNoCategory
	}
	cat, ok := catalog.Lookup(s.Category)
	if !ok || !cat.HasDifficulty(difficulty) {
		return ErrUnknownDifficulty
	}
	s.Difficulty = difficulty
	return nil
}

// Ready reports whether both choices are made.
func (s *Selection) Ready() bool {
	return s.Category != "" && s.Difficulty != ""
}

// Restart returns the selection to its initial empty state.
func (s *Selection) Restart() {
	s.Category = ""
	s.Difficulty = ""
	s.AvailableDifficulties = []string{}
	s.SessionID = ""
}
