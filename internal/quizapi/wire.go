package quizapi

import "github.com/remaimber-it/quiz-backend/internal/domain/questionbank"

const (
	correctSuffix = "_correct"
	trueMarker    = "true"
)

// wireQuestion mirrors the bank's JSON. Slots are keyed by name here and
// nowhere else.
type wireQuestion struct {
	ID             int                `json:"id"`
	Question       string             `json:"question"`
	Answers        map[string]*string `json:"answers"`
	CorrectAnswers map[string]string  `json:"correct_answers"`
	Explanation    *string            `json:"explanation"`
	Category       string             `json:"category"`
	Difficulty     string             `json:"difficulty"`
}

func (w wireQuestion) toQuestion() questionbank.Question {
	q := questionbank.Question{
		ID:         w.ID,
		Prompt:     w.Question,
		Category:   w.Category,
		Difficulty: w.Difficulty,
	}
	if w.Explanation != nil {
		q.Explanation = *w.Explanation
	}

	for i := 0; i < questionbank.MaxChoices; i++ {
		key := questionbank.SlotKey(i)
		if text := w.Answers[key]; text != nil && *text != "" {
			q.Choices[i].Text = *text
			q.Choices[i].Present = true
		}
		q.Choices[i].Correct = w.CorrectAnswers[key+correctSuffix] == trueMarker
	}
	return q
}
