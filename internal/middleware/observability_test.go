package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mestraaurora/aurora-api/internal/observability"
)

func TestObservabilityCountsAPIRequests(t *testing.T) {
	app := fiber.New()
	app.Use(Observability(zerolog.Nop()))
	app.Post("/api/probe", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusBadRequest)
	})
	app.Get("/outside", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", observability.MetricsHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/probe", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/outside", nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	exposition := string(body)
	require.Contains(t, exposition, `aurora_http_requests_total{method="POST",route="/api/probe",status="400"} 1`)
	require.Contains(t, exposition, `aurora_http_errors_total{method="POST",route="/api/probe",status="400"} 1`)
	require.NotContains(t, exposition, `route="/outside"`)
}

func TestLatencyBucket(t *testing.T) {
	require.Equal(t, "<=25ms", latencyBucket(10*time.Millisecond))
	require.Equal(t, "<=500ms", latencyBucket(400*time.Millisecond))
	require.Equal(t, "<=2s", latencyBucket(1500*time.Millisecond))
	require.Equal(t, ">2s", latencyBucket(3*time.Second))
}
