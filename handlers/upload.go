package handlers

import (
	"ffmax-tournament-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App, uploadService *services.UploadService) {
	app.Post("/api/uploads/banner", uploadService.UploadBanner)
}
