package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerShapesUnhandledErrors(t *testing.T) {
	app := newTestApp(discardLogger)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database on fire")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var envelope errorEnvelope
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
	require.Equal(t, "INTERNAL_ERROR", envelope.Code)
}

func TestErrorHandlerKeepsClientStatus(t *testing.T) {
	app := newTestApp(discardLogger)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var envelope errorEnvelope
	decodeResponse(t, resp, &envelope)
	require.False(t, envelope.Success)
	require.NotEmpty(t, envelope.Message)
}
