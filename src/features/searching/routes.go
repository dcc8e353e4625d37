package searching

import (
	"github.com/gofiber/fiber/v2"

	"tunelens/src/features/config"
)

// RegisterRoutes registers searching-related routes
func RegisterRoutes(app *fiber.App, service *Service, configManager *config.Manager) {
	handler := NewHandler(service, configManager)

	api := app.Group("/api")
	api.Post("/search", handler.Search)
	api.Get("/health", handler.Health)
}
