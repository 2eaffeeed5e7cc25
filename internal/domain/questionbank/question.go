package questionbank

import "fmt"

// MaxChoices is the number of answer slots a question can carry
// (answer_a … answer_f).
const MaxChoices = 6

// Choice is one answer slot. Slots the bank left empty have Present false
// and are never offered.
type Choice struct {
	Text    string
	Present bool
	Correct bool
}

// Question is a multiple-choice question as served by the question bank,
// with its slots indexed positionally.
type Question struct {
	ID          int
	Prompt      string
	Category    string
	Difficulty  string
	Explanation string
	Choices     [MaxChoices]Choice
}

// SlotKey returns the bank's key for slot i ("answer_a" for 0).
func SlotKey(i int) string {
	if i < 0 || i >= MaxChoices {
		return ""
	}
	return fmt.Sprintf("answer_%c", 'a'+rune(i))
}

// SlotIndex is the inverse of SlotKey.
func SlotIndex(key string) (int, bool) {
	for i := 0; i < MaxChoices; i++ {
		if SlotKey(i) == key {
			return i, true
		}
	}
	return -1, false
}

// ChoiceText returns the display text of slot i, or false when the slot is
// out of range or empty.
func (q Question) ChoiceText(i int) (string, bool) {
	if i < 0 || i >= MaxChoices || !q.Choices[i].Present {
		return "", false
	}
	return q.Choices[i].Text, true
}

// IsCorrect reports whether slot i is marked correct.
func (q Question) IsCorrect(i int) bool {
	if i < 0 || i >= MaxChoices {
		return false
	}
	return q.Choices[i].Correct
}

// CorrectIndex returns the first slot marked correct.
func (q Question) CorrectIndex() (int, bool) {
	for i, c := range q.Choices {
		if c.Correct {
			return i, true
		}
	}
	return -1, false
}

// Offered returns the indexes of the non-empty slots in order.
func (q Question) Offered() []int {
	var out []int
	for i, c := range q.Choices {
		if c.Present && c.Text != "" {
			out = append(out, i)
		}
	}
	return out
}
