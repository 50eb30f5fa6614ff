package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mestraaurora/aurora-api/internal/handler"
	"github.com/mestraaurora/aurora-api/internal/models"
	"github.com/mestraaurora/aurora-api/internal/service"
)

type errorEnvelope struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func newTestApp(logger zerolog.Logger) *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(logger)})
}

func newSubmissionValidator(t *testing.T) *service.SubmissionValidator {
	t.Helper()
	v, err := service.NewSubmissionValidator(validator.New(validator.WithRequiredStructEnabled()))
	require.NoError(t, err)
	return v
}

type memoryLeads struct {
	mu    sync.Mutex
	leads []models.Lead
}

func (m *memoryLeads) Create(_ context.Context, lead *models.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead.ID = uint(len(m.leads) + 1)
	m.leads = append(m.leads, *lead)
	return nil
}

func (m *memoryLeads) stored() []models.Lead {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Lead(nil), m.leads...)
}

type countingDispatcher struct {
	mu     sync.Mutex
	result bool
	to     []string
}

func (d *countingDispatcher) Send(_ context.Context, to, _, _ string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.to = append(d.to, to)
	return d.result
}

func (d *countingDispatcher) Mode() string { return "counting" }

func (d *countingDispatcher) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.to)
}

var discardLogger = zerolog.New(io.Discard)
