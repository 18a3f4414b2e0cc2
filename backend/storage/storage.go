package storage

import (
	"learnscripting/backend/models"
)

// Store gives controllers access to the four backing documents: three
// read-only content files and the mutable user list. Every mutation rewrites
// the whole user document; there is no locking and the last writer wins.
type Store interface {
	// LoadLessons returns the lesson list for "python" or "javascript".
	// A missing or malformed document reads as empty, never as a failure.
	LoadLessons(language string) []models.Lesson

	// LoadQuizzes returns the language -> questions mapping. Missing or
	// malformed documents read as empty; other I/O faults are returned.
	LoadQuizzes() (map[string][]models.QuizQuestion, error)

	// LoadUsers returns the user list with the same defensive read policy
	// as LoadQuizzes.
	LoadUsers() ([]models.User, error)

	// SaveUsers rewrites the entire user document.
	SaveUsers(users []models.User) error

	// FileStatus reports existence of each backing document, keyed
	// python_lessons, javascript_lessons, quizzes, users.
	FileStatus() map[string]bool
}
