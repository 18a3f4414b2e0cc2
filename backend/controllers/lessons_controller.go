package controllers

import (
	"strings"

	"learnscripting/backend/config"
	"learnscripting/backend/storage"

	"github.com/gofiber/fiber/v2"
)

type LessonsController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewLessonsController(store storage.Store, cfg *config.Config) *LessonsController {
	return &LessonsController{Store: store, Cfg: cfg}
}

func (lc *LessonsController) GetPythonLessons(c *fiber.Ctx) error {
	return c.JSON(lc.Store.LoadLessons("python"))
}

func (lc *LessonsController) GetJavascriptLessons(c *fiber.Ctx) error {
	return c.JSON(lc.Store.LoadLessons("javascript"))
}

// CheckExercise godoc
// @Summary Check a lesson exercise answer
// @Description Compares the submitted answer against the lesson's expected answer
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "language, lesson_id, answer"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /check-exercise [post]
func (lc *LessonsController) CheckExercise(c *fiber.Ctx) error {
	type CheckInput struct {
		Language string `json:"language"`
		LessonID int    `json:"lesson_id"`
		Answer   string `json:"answer"`
	}

	var input CheckInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brak danych",
		})
	}

	if input.Language == "" || input.LessonID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brakuje language lub lesson_id",
		})
	}

	if input.Language != "python" && input.Language != "javascript" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Zły język",
		})
	}

	for _, lesson := range lc.Store.LoadLessons(input.Language) {
		if lesson.ID != input.LessonID {
			continue
		}

		correct := lesson.Exercise.Answer
		answer := strings.TrimSpace(input.Answer)
		isCorrect := strings.ToLower(answer) == strings.ToLower(strings.TrimSpace(correct))

		message := "Dobrze!"
		if !isCorrect {
			message = "Źle! Poprawna: " + correct
		}

		return c.JSON(fiber.Map{
			"correct":        isCorrect,
			"message":        message,
			"correct_answer": correct,
		})
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Nie ma takiej lekcji",
	})
}
