package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mestraaurora/aurora-api/internal/config"
	"github.com/mestraaurora/aurora-api/internal/handler"
	"github.com/mestraaurora/aurora-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ReadingHandler *handler.ReadingHandler
	ContactHandler *handler.ContactHandler
	Modes          handler.HealthModes
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	v1 := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	v1.Get("/health", handler.HealthCheck(cfg, deps.Modes))

	app.Get("/metrics", observability.MetricsHandler())

	if deps.ReadingHandler != nil {
		deps.ReadingHandler.Register(app.Group("/api/saju"))
	}

	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(app.Group("/api/contact"))
	}

	// Built landing page, when bundled alongside the API
	if dir := strings.TrimSpace(cfg.StaticDir); dir != "" {
		app.Static("/", dir, fiber.Static{Compress: true, Index: "index.html"})
	}
}
