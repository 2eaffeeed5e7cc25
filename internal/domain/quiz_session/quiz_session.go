package quizsession

import (
	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
	"github.com/remaimber-it/quiz-backend/internal/id"
)

type State string

const (
	StateLoading  State = "loading"
	StateActive   State = "active"
	StateFailed   State = "failed"
	StateFinished State = "finished"
)

// QuizSession is one run through a batch of fetched questions.
//
// Answers and Results grow together, one entry per answered question, so
// len(Answers) == len(Results) == Position while the session is active.
type QuizSession struct {
	ID          string
	SelectionID string
	Category    string
	Difficulty  string

	State      State
	Questions  []questionbank.Question
	Position   int
	Answers    []int  // chosen slot index per answered question
	Results    []bool // correctness per answered question
	Finished   bool
	Error      string
	Generation uint64 // bumped by every Start; fetch results carry it back
}

// New creates a session for a completed selection. Call Start to request
// its questions.
func New(selectionID, category, difficulty string) *QuizSession {
	return &QuizSession{
		ID:          id.New(),
		SelectionID: selectionID,
		Category:    category,
		Difficulty:  difficulty,
		State:       StateLoading,
		Answers:     []int{},
		Results:     []bool{},
	}
}

// Start discards everything from the previous run and enters Loading.
// The returned generation must accompany the fetch result.
func (s *QuizSession) Start() uint64 {
	s.Generation++
	s.State = StateLoading
	s.Questions = nil
	s.Position = 0
	s.Answers = []int{}
	s.Results = []bool{}
	s.Finished = false
	s.Error = ""
	return s.Generation
}

// Load applies a successful fetch. It reports false and changes nothing
// when the result belongs to a superseded Start.
func (s *QuizSession) Load(generation uint64, questions []questionbank.Question) bool {
	if generation != s.Generation || s.State != StateLoading {
		return false
	}

	s.Questions = make([]questionbank.Question, len(questions))
	copy(s.Questions, questions)
	s.Position = 0
	s.Answers = []int{}
	s.Results = []bool{}
	s.Error = ""

	if len(s.Questions) == 0 {
		s.Finished = true
		s.State = StateFinished
		return true
	}

	s.Finished = false
	s.State = StateActive
	return true
}

// Fail applies a failed fetch, with the same staleness rule as Load.
func (s *QuizSession) Fail(generation uint64, err error) bool {
	if generation != s.Generation || s.State != StateLoading {
		return false
	}

	s.Questions = nil
	s.Error = err.Error()
	s.State = StateFailed
	return true
}

// Current returns the question awaiting an answer.
func (s *QuizSession) Current() (questionbank.Question, bool) {
	if s.State != StateActive || s.Position >= len(s.Questions) {
		return questionbank.Question{}, false
	}
	return s.Questions[s.Position], true
}

// SubmitAnswer records the answer to the current question. Outside the
// active state, or for a slot the question does not offer, it is a no-op
// and reports false.
func (s *QuizSession) SubmitAnswer(choice int) bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	if _, offered := q.ChoiceText(choice); !offered {
		return false
	}

	s.Answers = append(s.Answers, choice)
	s.Results = append(s.Results, q.IsCorrect(choice))

	if s.Position == len(s.Questions)-1 {
		s.Position++
		s.Finished = true
		s.State = StateFinished
		return true
	}

	s.Position++
	return true
}

// TryAgain restarts a finished or failed session with the same parameters.
func (s *QuizSession) TryAgain() (uint64, bool) {
	if s.State != StateFinished && s.State != StateFailed {
		return 0, false
	}
	return s.Start(), true
}

// Score counts correct answers.
func (s *QuizSession) Score() int {
	score := 0
	for _, ok := range s.Results {
		if ok {
			score++
		}
	}
	return score
}
