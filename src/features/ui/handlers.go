package ui

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"tunelens/src/features/config"
)

// Handler is the handler for the UI feature.
type Handler struct {
	configManager *config.Manager
}

// NewHandler creates a new handler for the UI feature.
func NewHandler(configManager *config.Manager) *Handler {
	return &Handler{
		configManager: configManager,
	}
}

// RenderSearch renders the search page.
func (h *Handler) RenderSearch(c *fiber.Ctx) error {
	slog.Debug("RenderSearch handler called")
	cfg := h.configManager.Get()
	return c.Render("search", fiber.Map{
		"Title":                 "Tunelens",
		"CatalogConfigured":     cfg.Catalog.ClientID != "" && cfg.Catalog.ClientSecret != "",
		"InterpreterConfigured": cfg.Interpreter.APIKey != "",
	})
}
