package models

// QuizQuestion is one multiple-choice question. Correct is the 0-based index
// into Options. data/quiz.json maps language name to an ordered question list.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}
