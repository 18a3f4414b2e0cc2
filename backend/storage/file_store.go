package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"learnscripting/backend/config"
	"learnscripting/backend/models"
)

// FileStore persists everything as pretty-printed JSON files on local disk.
type FileStore struct {
	cfg *config.Config
}

func NewFileStore(cfg *config.Config) *FileStore {
	return &FileStore{cfg: cfg}
}

func (s *FileStore) LoadLessons(language string) []models.Lesson {
	path := s.cfg.PythonFile
	if language == "javascript" {
		path = s.cfg.JSFile
	}

	var lessons []models.Lesson
	if err := readJSON(path, &lessons); err != nil {
		return []models.Lesson{}
	}
	return lessons
}

func (s *FileStore) LoadQuizzes() (map[string][]models.QuizQuestion, error) {
	quizzes := map[string][]models.QuizQuestion{}
	if err := readJSON(s.cfg.QuizFile, &quizzes); err != nil {
		if isDataError(err) {
			return map[string][]models.QuizQuestion{}, nil
		}
		return nil, err
	}
	return quizzes, nil
}

func (s *FileStore) LoadUsers() ([]models.User, error) {
	var users []models.User
	if err := readJSON(s.cfg.UsersFile, &users); err != nil {
		if isDataError(err) {
			return []models.User{}, nil
		}
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *FileStore) SaveUsers(users []models.User) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		return err
	}
	return os.WriteFile(s.cfg.UsersFile, buf.Bytes(), 0644)
}

func (s *FileStore) FileStatus() map[string]bool {
	return map[string]bool{
		"python_lessons":     fileExists(s.cfg.PythonFile),
		"javascript_lessons": fileExists(s.cfg.JSFile),
		"quizzes":            fileExists(s.cfg.QuizFile),
		"users":              fileExists(s.cfg.UsersFile),
	}
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// isDataError reports whether the read failed because the document is absent
// or unparseable. Those read as empty; anything else is a real storage fault.
func isDataError(err error) bool {
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
