package controllers

import (
	"learnscripting/backend/config"
	"learnscripting/backend/storage"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewHealthController(store storage.Store, cfg *config.Config) *HealthController {
	return &HealthController{Store: store, Cfg: cfg}
}

func (hc *HealthController) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"app":     "Learn Scripting API",
		"status":  "działa",
		"version": "2.0",
	})
}

func (hc *HealthController) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": epochSeconds(),
		"files":     hc.Store.FileStatus(),
	})
}
