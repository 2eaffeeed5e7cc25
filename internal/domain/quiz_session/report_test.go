package quizsession_test

import (
	"testing"

	quizsession "github.com/remaimber-it/quiz-backend/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
)

func TestReport_ResolvesTexts(t *testing.T) {
	q := questionbank.Question{ID: 7, Prompt: "Capital of France?", Explanation: "Paris since 987."}
	q.Choices[0] = questionbank.Choice{Text: "Paris", Present: true, Correct: true}
	q.Choices[1] = questionbank.Choice{Text: "London", Present: true}

	s := quizsession.New("sel", "HTML", "easy")
	s.Load(s.Start(), []questionbank.Question{q})
	s.SubmitAnswer(1)

	if s.Results[0] {
		t.Error("expected answer_b to be recorded as incorrect")
	}

	r, ok := s.Report()
	if !ok {
		t.Fatal("expected report to be available")
	}
	if r.Score != 0 || r.Total != 1 {
		t.Errorf("expected 0/1, got %d/%d", r.Score, r.Total)
	}

	item := r.Items[0]
	if item.UserAnswer != "London" {
		t.Errorf("expected user answer London, got %q", item.UserAnswer)
	}
	if item.CorrectAnswer != "Paris" {
		t.Errorf("expected correct answer Paris, got %q", item.CorrectAnswer)
	}
	if item.Correct {
		t.Error("expected item to be marked incorrect")
	}
	if item.Explanation != "Paris since 987." {
		t.Errorf("unexpected explanation %q", item.Explanation)
	}
}

func TestReport_Sentinels(t *testing.T) {
	q := questionbank.Question{ID: 1, Prompt: "No right answer here"}
	q.Choices[0] = questionbank.Choice{Text: "maybe", Present: true}

	// a stored answer that no longer resolves to an offered slot
	s := &quizsession.QuizSession{
		State:     quizsession.StateFinished,
		Questions: []questionbank.Question{q},
		Position:  1,
		Answers:   []int{4},
		Results:   []bool{false},
		Finished:  true,
	}

	r, _ := s.Report()
	if r.Items[0].UserAnswer != quizsession.NoAnswerText {
		t.Errorf("expected %q, got %q", quizsession.NoAnswerText, r.Items[0].UserAnswer)
	}
	if r.Items[0].CorrectAnswer != quizsession.NoCorrectAnswerText {
		t.Errorf("expected %q, got %q", quizsession.NoCorrectAnswerText, r.Items[0].CorrectAnswer)
	}
}

func TestReport_NotFinished(t *testing.T) {
	s := activeSession(t, 2)
	s.SubmitAnswer(0)

	if _, ok := s.Report(); ok {
		t.Error("expected no report before the last answer")
	}
}

func TestReport_ScoreMatchesResults(t *testing.T) {
	s := activeSession(t, 4)
	s.SubmitAnswer(0)
	s.SubmitAnswer(1)
	s.SubmitAnswer(0)
	s.SubmitAnswer(0)

	r, _ := s.Report()
	if r.Score != 3 || r.Total != 4 {
		t.Errorf("expected 3/4, got %d/%d", r.Score, r.Total)
	}
	for i, item := range r.Items {
		if item.Correct != s.Results[i] {
			t.Errorf("item %d: expected correct=%v", i, s.Results[i])
		}
	}
}
