package selection_test

import (
	"errors"
	"testing"

	"github.com/remaimber-it/quiz-backend/internal/domain/catalog"
	"github.com/remaimber-it/quiz-backend/internal/domain/selection"
)

func TestNew_Empty(t *testing.T) {
	s := selection.New()

	if s.ID == "" {
		t.Error("expected non-empty ID")
	}
	if s.Category != "" || s.Difficulty != "" {
		t.Errorf("expected empty choices, got %q/%q", s.Category, s.Difficulty)
	}
	if len(s.AvailableDifficulties) != 0 {
		t.Errorf("expected no difficulties, got %v", s.AvailableDifficulties)
	}
	if s.Ready() {
		t.Error("expected new selection not to be ready")
	}
}

func TestChooseCategory(t *testing.T) {
	s := selection.New()

	if err := s.ChooseCategory("HTML"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Category != "HTML" {
		t.Errorf("expected HTML, got %q", s.Category)
	}
	if len(s.AvailableDifficulties) != 3 {
		t.Errorf("expected 3 difficulties, got %v", s.AvailableDifficulties)
	}
	if s.Ready() {
		t.Error("expected selection not to be ready before difficulty")
	}
}

func TestChooseCategory_ClearsDifficulty(t *testing.T) {
	s := selection.New()
	s.ChooseCategory("PHP")
	s.ChooseDifficulty("hard")

	if err := s.ChooseCategory("Python"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Difficulty != "" {
		t.Errorf("expected difficulty to be cleared, got %q", s.Difficulty)
	}
	if len(s.AvailableDifficulties) != 2 {
		t.Errorf("expected Python difficulties, got %v", s.AvailableDifficulties)
	}
}

func TestChooseCategory_Unknown(t *testing.T) {
	s := selection.New()

	err := s.ChooseCategory("Cobol")
	if !errors.Is(err, selection.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	if s.Category != "" {
		t.Error("expected category to stay empty")
	}
}

func TestChooseCategory_RandomBypassesDifficulty(t *testing.T) {
	s := selection.New()

	if err := s.ChooseCategory(catalog.Random); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Ready() {
		t.Fatal("expected random selection to be ready immediately")
	}
	if s.Difficulty != catalog.RandomDifficulty {
		t.Errorf("expected %q, got %q", catalog.RandomDifficulty, s.Difficulty)
	}
}

func TestChooseDifficulty(t *testing.T) {
	s := selection.New()
	s.ChooseCategory("Docker")

	if err := s.ChooseDifficulty("medium"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Ready() {
		t.Error("expected selection to be ready")
	}
}

func TestChooseDifficulty_Errors(t *testing.T) {
	s := selection.New()

	if err := s.ChooseDifficulty("easy"); !errors.Is(err, selection.ErrNoCategory) {
		t.Errorf("expected ErrNoCategory, got %v", err)
	}

	s.ChooseCategory("JavaScript")
	if err := s.ChooseDifficulty("hard"); !errors.Is(err, selection.ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestLocked(t *testing.T) {
	s := selection.New()
	s.ChooseCategory("HTML")
	s.ChooseDifficulty("easy")
	s.SessionID = "running"

	if err := s.ChooseCategory("PHP"); !errors.Is(err, selection.ErrLocked) {
		t.Errorf("expected ErrLocked, got %v", err)
	}
	if err := s.ChooseDifficulty("hard"); !errors.Is(err, selection.ErrLocked) {
		t.Errorf("expected ErrLocked, got %v", err)
	}
}

func TestRestart(t *testing.T) {
	s := selection.New()
	s.ChooseCategory("HTML")
	s.ChooseDifficulty("easy")
	s.SessionID = "running"

	s.Restart()

	if s.Category != "" || s.Difficulty != "" || s.SessionID != "" {
		t.Errorf("expected cleared selection, got %+v", s)
	}
	if len(s.AvailableDifficulties) != 0 {
		t.Errorf("expected no difficulties, got %v", s.AvailableDifficulties)
	}
}
