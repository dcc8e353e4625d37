package metrics

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the scrape endpoint.
func RegisterRoutes(app *fiber.App, recorder *Recorder) {
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))
}
