package quizsession

const (
	NoAnswerText        = "No answer selected"
	NoCorrectAnswerText = "No correct answer"
)

// Report is the summary shown once every question was answered.
type Report struct {
	Score int
	Total int
	Items []ReviewItem
}

type ReviewItem struct {
	Prompt        string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
	Explanation   string
}

// Report builds the review. It is only available in the finished state.
func (s *QuizSession) Report() (Report, bool) {
	if s.State != StateFinished {
		return Report{}, false
	}

	r := Report{
		Score: s.Score(),
		Total: len(s.Questions),
		Items: make([]ReviewItem, len(s.Questions)),
	}

	for i, q := range s.Questions {
		item := ReviewItem{
			Prompt:        q.Prompt,
			UserAnswer:    NoAnswerText,
			CorrectAnswer: NoCorrectAnswerText,
			Explanation:   q.Explanation,
		}

		if i < len(s.Answers) {
			if text, ok := q.ChoiceText(s.Answers[i]); ok && text != "" {
				item.UserAnswer = text
			}
			item.Correct = s.Results[i]
		}

		if ci, ok := q.CorrectIndex(); ok {
			if text, ok := q.ChoiceText(ci); ok && text != "" {
				item.CorrectAnswer = text
			}
		}

		r.Items[i] = item
	}

	return r, true
}
