package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"learnscripting/backend/config"
	"learnscripting/backend/storage"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewQuizController(store storage.Store, cfg *config.Config) *QuizController {
	return &QuizController{Store: store, Cfg: cfg}
}

func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	language := c.Params("language")

	quizzes, err := qc.Store.LoadQuizzes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Wewnętrzny błąd serwera",
		})
	}

	quiz, ok := quizzes[language]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Nie ma quizu dla " + language,
		})
	}

	return c.JSON(quiz)
}

// CheckQuiz godoc
// @Summary Grade a submitted quiz
// @Description Scores submitted answers against the quiz answer key
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "language, answers"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /check-quiz [post]
func (qc *QuizController) CheckQuiz(c *fiber.Ctx) error {
	type QuizInput struct {
		Language string                 `json:"language"`
		Answers  map[string]interface{} `json:"answers"`
	}

	var input QuizInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brak danych",
		})
	}

	if input.Language == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brakuje języka",
		})
	}

	quizzes, err := qc.Store.LoadQuizzes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Wewnętrzny błąd serwera",
		})
	}

	quiz, ok := quizzes[input.Language]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Nie ma quizu dla " + input.Language,
		})
	}

	score := 0
	total := len(quiz)
	results := make([]fiber.Map, 0, total)

	for i, question := range quiz {
		userAnswer := input.Answers[strconv.Itoa(i)]

		isCorrect := false
		if userAnswer != nil {
			choice, err := toInt(userAnswer)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Błąd danych quizu: " + err.Error(),
				})
			}
			isCorrect = choice == question.Correct
		}

		if isCorrect {
			score++
		}

		results = append(results, fiber.Map{
			"question":       i + 1,
			"correct":        isCorrect,
			"correct_answer": question.Correct,
			"user_answer":    userAnswer,
		})
	}

	percent := 0
	if total > 0 {
		percent = score * 100 / total
	}

	message := "Spróbuj jeszcze raz!"
	if percent >= 90 {
		message = "Świetnie!"
	} else if percent >= 70 {
		message = "Dobrze!"
	}

	return c.JSON(fiber.Map{
		"score":   score,
		"total":   total,
		"percent": percent,
		"passed":  percent >= 70,
		"results": results,
		"message": message,
	})
}

// toInt coerces a submitted answer to an integer choice index. Clients send
// either a JSON number or a stringified index.
func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("nieprawidłowa odpowiedź %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("nieprawidłowa odpowiedź %v", v)
	}
}
