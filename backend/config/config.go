package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir    string
	PythonFile string
	JSFile     string
	QuizFile   string
	UsersFile  string
	ServerPort string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		DataDir:    dataDir,
		PythonFile: filepath.Join(dataDir, "python.json"),
		JSFile:     filepath.Join(dataDir, "JS.json"),
		QuizFile:   filepath.Join(dataDir, "quiz.json"),
		UsersFile:  getEnv("USERS_FILE", "users.json"),
		ServerPort: getEnv("SERVER_PORT", "5000"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
