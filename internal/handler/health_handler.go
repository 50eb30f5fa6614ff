package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mestraaurora/aurora-api/internal/config"
	"github.com/mestraaurora/aurora-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Service       string    `json:"service"`
	Environment   string    `json:"environment"`
	EmailDelivery string    `json:"email_delivery"`
	ReadingEngine string    `json:"reading_engine"`
}

// HealthModes carries the delivery and generation modes resolved at startup.
type HealthModes struct {
	EmailDelivery string
	ReadingEngine string
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config, modes HealthModes) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:        "ok",
			Timestamp:     time.Now().UTC(),
			Service:       cfg.AppName,
			Environment:   cfg.AppEnv,
			EmailDelivery: modes.EmailDelivery,
			ReadingEngine: modes.ReadingEngine,
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
