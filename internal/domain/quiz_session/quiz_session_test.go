package quizsession_test

import (
	"errors"
	"testing"

	quizsession "github.com/remaimber-it/quiz-backend/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
)

// makeQuestions builds n questions whose first slot is the correct one.
func makeQuestions(n int) []questionbank.Question {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i].ID = i + 1
		qs[i].Prompt = "Question " + string(rune('A'+i))
		qs[i].Choices[0] = questionbank.Choice{Text: "right", Present: true, Correct: true}
		qs[i].Choices[1] = questionbank.Choice{Text: "wrong", Present: true}
	}
	return qs
}

func activeSession(t *testing.T, n int) *quizsession.QuizSession {
	t.Helper()
	s := quizsession.New("sel", "HTML", "easy")
	gen := s.Start()
	if !s.Load(gen, makeQuestions(n)) {
		t.Fatal("expected load to be applied")
	}
	return s
}

func TestNew(t *testing.T) {
	s := quizsession.New("sel", "PHP", "hard")

	if s.ID == "" {
		t.Error("expected non-empty ID")
	}
	if s.State != quizsession.StateLoading {
		t.Errorf("expected loading, got %s", s.State)
	}
	if s.SelectionID != "sel" || s.Category != "PHP" || s.Difficulty != "hard" {
		t.Errorf("unexpected parameters: %+v", s)
	}
}

func TestLoad_Activates(t *testing.T) {
	s := activeSession(t, 10)

	if s.State != quizsession.StateActive {
		t.Errorf("expected active, got %s", s.State)
	}
	if s.Position != 0 || len(s.Answers) != 0 || len(s.Results) != 0 || s.Finished {
		t.Errorf("expected clean progress, got %+v", s)
	}
	if len(s.Questions) != 10 {
		t.Errorf("expected 10 questions, got %d", len(s.Questions))
	}
}

func TestLoad_CopiesQuestions(t *testing.T) {
	s := quizsession.New("sel", "HTML", "easy")
	qs := makeQuestions(2)
	s.Load(s.Start(), qs)

	qs[0].Prompt = "changed"
	if s.Questions[0].Prompt == "changed" {
		t.Error("expected session questions to be isolated from the caller's slice")
	}
}

func TestLoad_EmptyBatchFinishes(t *testing.T) {
	s := quizsession.New("sel", "HTML", "easy")
	s.Load(s.Start(), nil)

	if s.State != quizsession.StateFinished || !s.Finished {
		t.Errorf("expected finished, got %s", s.State)
	}
	r, ok := s.Report()
	if !ok || r.Score != 0 || r.Total != 0 {
		t.Errorf("expected 0/0 report, got %+v (ok=%v)", r, ok)
	}
}

func TestFail(t *testing.T) {
	s := quizsession.New("sel", "HTML", "easy")
	gen := s.Start()

	if !s.Fail(gen, errors.New("failed to fetch questions: status 500")) {
		t.Fatal("expected failure to be applied")
	}
	if s.State != quizsession.StateFailed {
		t.Errorf("expected failed, got %s", s.State)
	}
	if s.Error == "" {
		t.Error("expected an error message")
	}
	if len(s.Questions) != 0 {
		t.Errorf("expected no questions, got %d", len(s.Questions))
	}
}

func TestStaleResultsAreIgnored(t *testing.T) {
	s := quizsession.New("sel", "HTML", "easy")
	first := s.Start()
	second := s.Start()

	if s.Load(first, makeQuestions(3)) {
		t.Error("expected stale load to be rejected")
	}
	if s.Fail(first, errors.New("late")) {
		t.Error("expected stale failure to be rejected")
	}
	if s.State != quizsession.StateLoading {
		t.Errorf("expected still loading, got %s", s.State)
	}

	if !s.Load(second, makeQuestions(3)) {
		t.Error("expected current load to be applied")
	}
	if s.Load(second, makeQuestions(5)) {
		t.Error("expected a second delivery for the same generation to be rejected")
	}
	if len(s.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(s.Questions))
	}
}

func TestSubmitAnswer_KeepsSequencesAligned(t *testing.T) {
	s := activeSession(t, 10)

	for i := 0; i < 9; i++ {
		if !s.SubmitAnswer(i % 2) {
			t.Fatalf("answer %d was not applied", i)
		}
		if len(s.Answers) != s.Position || len(s.Results) != s.Position {
			t.Fatalf("after %d answers: answers=%d results=%d position=%d",
				i+1, len(s.Answers), len(s.Results), s.Position)
		}
		if s.State != quizsession.StateActive {
			t.Fatalf("expected active after %d answers, got %s", i+1, s.State)
		}
	}
}

func TestSubmitAnswer_LastQuestionFinishes(t *testing.T) {
	s := activeSession(t, 3)
	s.SubmitAnswer(0)
	s.SubmitAnswer(0)

	if s.Position != 2 {
		t.Fatalf("expected position 2, got %d", s.Position)
	}
	s.SubmitAnswer(1)

	if s.State != quizsession.StateFinished || !s.Finished {
		t.Errorf("expected finished, got %s", s.State)
	}
	if len(s.Answers) != 3 {
		t.Errorf("expected 3 answers, got %d", len(s.Answers))
	}
}

func TestSubmitAnswer_IgnoredOutsideActive(t *testing.T) {
	s := quizsession.New("sel", "HTML", "easy")
	s.Start()
	if s.SubmitAnswer(0) {
		t.Error("expected answer while loading to be ignored")
	}

	s = activeSession(t, 1)
	s.SubmitAnswer(0)
	if s.SubmitAnswer(0) {
		t.Error("expected answer after finish to be ignored")
	}
	if len(s.Answers) != 1 {
		t.Errorf("expected 1 answer, got %d", len(s.Answers))
	}
}

func TestSubmitAnswer_RejectsUnofferedSlot(t *testing.T) {
	s := activeSession(t, 2)

	for _, choice := range []int{4, -1, questionbank.MaxChoices} {
		if s.SubmitAnswer(choice) {
			t.Errorf("expected slot %d to be rejected", choice)
		}
	}
	if s.Position != 0 || len(s.Answers) != 0 || len(s.Results) != 0 {
		t.Errorf("expected no progress, got %+v", s)
	}

	if !s.SubmitAnswer(1) {
		t.Error("expected offered slot to be accepted")
	}
}

func TestSubmitAnswer_Correctness(t *testing.T) {
	s := activeSession(t, 2)
	s.SubmitAnswer(1)
	s.SubmitAnswer(0)

	if s.Results[0] || !s.Results[1] {
		t.Errorf("expected [false true], got %v", s.Results)
	}
}

func TestScore(t *testing.T) {
	pattern := []bool{true, true, false, true, false, false, true, true, false, true}
	s := activeSession(t, len(pattern))

	for _, correct := range pattern {
		if correct {
			s.SubmitAnswer(0)
		} else {
			s.SubmitAnswer(1)
		}
	}

	if s.Score() != 6 {
		t.Errorf("expected score 6, got %d", s.Score())
	}
}

func TestTryAgain(t *testing.T) {
	s := activeSession(t, 4)
	for i := 0; i < 4; i++ {
		s.SubmitAnswer(0)
	}

	gen, ok := s.TryAgain()
	if !ok {
		t.Fatal("expected try again to be allowed when finished")
	}
	if gen != s.Generation {
		t.Errorf("expected generation %d, got %d", s.Generation, gen)
	}
	if s.State != quizsession.StateLoading {
		t.Errorf("expected loading, got %s", s.State)
	}
	if s.Position != 0 || len(s.Answers) != 0 || len(s.Results) != 0 || s.Finished {
		t.Errorf("expected reset progress, got %+v", s)
	}
	if s.Category != "HTML" || s.Difficulty != "easy" {
		t.Errorf("expected parameters to be kept, got %s/%s", s.Category, s.Difficulty)
	}
}

func TestTryAgain_AfterFailure(t *testing.T) {
	s := quizsession.New("sel", "HTML", "easy")
	s.Fail(s.Start(), errors.New("boom"))

	if _, ok := s.TryAgain(); !ok {
		t.Fatal("expected try again to be allowed after failure")
	}
	if s.Error != "" {
		t.Errorf("expected error to be cleared, got %q", s.Error)
	}
}

func TestTryAgain_RejectedWhileActive(t *testing.T) {
	s := activeSession(t, 3)
	s.SubmitAnswer(0)

	if _, ok := s.TryAgain(); ok {
		t.Error("expected try again to be rejected while active")
	}
	if len(s.Answers) != 1 {
		t.Error("expected progress to be kept")
	}
}
