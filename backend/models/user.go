package models

// User is one record in the users.json array. Passwords are stored and
// compared as plain text; credential handling is confined to the auth
// controller so hashing can be introduced there later.
type User struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Created   float64  `json:"created"`
	LastLogin float64  `json:"last_login"`
	Progress  Progress `json:"progress"`
}

type Progress struct {
	Python     LanguageProgress `json:"python"`
	Javascript LanguageProgress `json:"javascript"`
}

type LanguageProgress struct {
	Lessons []int        `json:"lessons"`
	Quizzes []QuizResult `json:"quizzes"`
}

// QuizResult is the shape reserved for recorded quiz attempts. No endpoint
// writes it yet; user stats and ranking read it.
type QuizResult struct {
	Percent float64 `json:"percent"`
}

// NewProgress returns the empty progress structure assigned at registration.
func NewProgress() Progress {
	return Progress{
		Python:     LanguageProgress{Lessons: []int{}, Quizzes: []QuizResult{}},
		Javascript: LanguageProgress{Lessons: []int{}, Quizzes: []QuizResult{}},
	}
}
