package hosting

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Use(LogAllRequestsMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	app := newMiddlewareApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), 5000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	app := newMiddlewareApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "trace-42")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "trace-42" {
		t.Errorf("expected X-Request-ID %q, got %q", "trace-42", got)
	}
}
