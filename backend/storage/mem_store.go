package storage

import (
	"sync"

	"learnscripting/backend/models"
)

// MemStore keeps the documents in memory. It exists so the HTTP surface can
// be tested without touching disk; the optional fault fields let tests drive
// the load/save failure paths.
type MemStore struct {
	mu      sync.RWMutex
	Lessons map[string][]models.Lesson
	Quizzes map[string][]models.QuizQuestion
	Users   []models.User

	LoadErr error // returned by LoadQuizzes and LoadUsers when set
	SaveErr error // returned by SaveUsers when set
}

func NewMemStore() *MemStore {
	return &MemStore{
		Lessons: map[string][]models.Lesson{},
		Quizzes: map[string][]models.QuizQuestion{},
	}
}

func (s *MemStore) LoadLessons(language string) []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lessons := s.Lessons[language]
	if lessons == nil {
		return []models.Lesson{}
	}
	return lessons
}

func (s *MemStore) LoadQuizzes() (map[string][]models.QuizQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Quizzes, nil
}

func (s *MemStore) LoadUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	users := make([]models.User, len(s.Users))
	copy(users, s.Users)
	return users, nil
}

func (s *MemStore) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Users = users
	return nil
}

func (s *MemStore) FileStatus() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]bool{
		"python_lessons":     len(s.Lessons["python"]) > 0,
		"javascript_lessons": len(s.Lessons["javascript"]) > 0,
		"quizzes":            len(s.Quizzes) > 0,
		"users":              true,
	}
}
