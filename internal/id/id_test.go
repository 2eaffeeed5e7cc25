package id_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/remaimber-it/quiz-backend/internal/id"
)

func TestNew_IsUUID(t *testing.T) {
	v := id.New()
	if _, err := uuid.Parse(v); err != nil {
		t.Errorf("expected a valid uuid, got %q: %v", v, err)
	}
}

func TestNew_Unique(t *testing.T) {
	if id.New() == id.New() {
		t.Error("expected different IDs")
	}
}
