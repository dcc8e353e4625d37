package searching

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"tunelens/src/features/config"
)

// Handler handles HTTP requests for the searching feature
type Handler struct {
	service *Service
	config  *config.Manager
}

// NewHandler creates a new searching handler
func NewHandler(service *Service, configManager *config.Manager) *Handler {
	return &Handler{
		service: service,
		config:  configManager,
	}
}

// SearchRequest represents a search request
type SearchRequest struct {
	Query string `json:"query" form:"query"`
}

// Search runs the search chain for a free-text query
func (h *Handler) Search(c *fiber.Ctx) error {
	slog.Debug("Search handler called")

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter is required",
		})
	}

	return c.JSON(h.service.Search(c.Context(), req.Query))
}

// Health reports liveness and which upstream secrets are configured
func (h *Handler) Health(c *fiber.Ctx) error {
	slog.Debug("Health handler called")

	cfg := h.config.Get()
	return c.JSON(fiber.Map{
		"status":                "ok",
		"spotify_client_id":     cfg.Catalog.ClientID != "",
		"spotify_client_secret": cfg.Catalog.ClientSecret != "",
		"deepseek_api_key":      cfg.Interpreter.APIKey != "",
	})
}
