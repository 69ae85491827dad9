package handlers

import (
	"ffmax-tournament-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App, healthService *services.HealthService) {
	app.Get("/", healthService.Root)
	app.Get("/test", healthService.TestDatabase)
}
