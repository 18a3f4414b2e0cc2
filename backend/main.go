package main

import (
	"log"
	"os"

	"learnscripting/backend/config"
	"learnscripting/backend/middleware"
	"learnscripting/backend/models"
	"learnscripting/backend/routes"
	"learnscripting/backend/storage"
	"learnscripting/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage
	store := storage.NewFileStore(cfg)

	// Bootstrap an empty user store on first run
	if _, err := os.Stat(cfg.UsersFile); os.IsNotExist(err) {
		if err := store.SaveUsers([]models.User{}); err != nil {
			log.Fatalf("Error creating users file: %v", err)
		}
	}

	// Initialize logger
	logger := utils.InitLogger()

	logger.Printf("Python: %s", cfg.PythonFile)
	logger.Printf("JavaScript: %s", cfg.JSFile)
	logger.Printf("Quiz: %s", cfg.QuizFile)
	logger.Printf("Users: %s", cfg.UsersFile)

	for name, exists := range store.FileStatus() {
		if !exists {
			logger.Printf("Warning: %s file is missing", name)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
