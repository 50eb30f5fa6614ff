package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mestraaurora/aurora-api/internal/models"
	"github.com/mestraaurora/aurora-api/pkg/ai"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newTestValidator(t *testing.T) *SubmissionValidator {
	t.Helper()
	v, err := NewSubmissionValidator(validator.New(validator.WithRequiredStructEnabled()))
	require.NoError(t, err)
	return v
}

type sentMessage struct {
	to, subject, body string
}

type recordingDispatcher struct {
	mu     sync.Mutex
	result bool
	sent   []sentMessage
}

func (d *recordingDispatcher) Send(_ context.Context, to, subject, body string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, sentMessage{to: to, subject: subject, body: body})
	return d.result
}

func (d *recordingDispatcher) Mode() string { return "recording" }

type recordingLeadRepo struct {
	mu    sync.Mutex
	err   error
	leads []models.Lead
	calls int
}

func (r *recordingLeadRepo) Create(_ context.Context, lead *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	lead.ID = uint(len(r.leads) + 1)
	r.leads = append(r.leads, *lead)
	return nil
}

func (r *recordingLeadRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Lead
}

func (p *recordingPublisher) PublishLeadCreated(_ context.Context, lead models.Lead) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, lead)
	return nil
}

type stubCompleter struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
	last  ai.CompletionInput
}

func (c *stubCompleter) Complete(_ context.Context, input ai.CompletionInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.last = input
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *stubCompleter) Model() string { return "stub-model" }

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, ReadingInput) (string, error) {
	return "", errors.New("generator exploded")
}

func (failingGenerator) Strategy() string { return "failing" }
