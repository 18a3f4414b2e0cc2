package routes

import (
	"errors"

	"learnscripting/backend/config"
	"learnscripting/backend/controllers"
	"learnscripting/backend/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store storage.Store, cfg *config.Config) {
	healthController := controllers.NewHealthController(store, cfg)
	app.Get("/", healthController.Home)
	app.Get("/api/health", healthController.HealthCheck)

	// Content routes
	lessonsController := controllers.NewLessonsController(store, cfg)
	app.Get("/api/python/lessons", lessonsController.GetPythonLessons)
	app.Get("/api/javascript/lessons", lessonsController.GetJavascriptLessons)
	app.Post("/api/check-exercise", lessonsController.CheckExercise)

	// Quiz routes
	quizController := controllers.NewQuizController(store, cfg)
	app.Get("/api/quiz/:language", quizController.GetQuiz)
	app.Post("/api/check-quiz", quizController.CheckQuiz)

	// Auth routes
	authController := controllers.NewAuthController(store, cfg)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)

	// Stats routes
	statsController := controllers.NewStatsController(store, cfg)
	app.Get("/api/user/:id/stats", statsController.GetUserStats)
	app.Get("/api/stats", statsController.GetSystemStats)
	app.Get("/api/ranking", statsController.GetRanking)
}

// ErrorHandler turns framework-level errors into the API's JSON error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).JSON(fiber.Map{"error": "Nie znaleziono"})
	case fiber.StatusMethodNotAllowed:
		return c.Status(code).JSON(fiber.Map{"error": "Metoda niedozwolona"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Wewnętrzny błąd serwera",
		})
	}
}
