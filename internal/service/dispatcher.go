package service

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mestraaurora/aurora-api/internal/observability"
	"github.com/mestraaurora/aurora-api/pkg/mailer"
)

const (
	dispatchModeSMTP      = "smtp"
	dispatchModeSimulated = "simulated"

	simulatedSuccessRate = 0.8
)

// Dispatcher delivers a notification and reports whether it went out. It never panics or returns errors.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, body string) bool
	Mode() string
}

// SMTPDispatcher sends through a real mail transport.
type SMTPDispatcher struct {
	sender mailer.Sender
	from   string
	logger zerolog.Logger
}

// NewSMTPDispatcher constructs a dispatcher over sender.
func NewSMTPDispatcher(sender mailer.Sender, from string, logger zerolog.Logger) *SMTPDispatcher {
	return &SMTPDispatcher{
		sender: sender,
		from:   from,
		logger: logger.With().Str("component", "smtp_dispatcher").Logger(),
	}
}

// Mode implements Dispatcher.
func (d *SMTPDispatcher) Mode() string {
	return dispatchModeSMTP
}

// Send implements Dispatcher.
func (d *SMTPDispatcher) Send(ctx context.Context, to, subject, body string) bool {
	err := d.sender.Send(ctx, mailer.Message{From: d.from, To: to, Subject: subject, Body: body})
	if err != nil {
		d.logger.Error().Err(err).Str("to", maskEmail(to)).Msg("email delivery failed")
		observability.EmailDispatches().WithLabelValues(dispatchModeSMTP, "failed").Inc()
		return false
	}

	d.logger.Info().Str("to", maskEmail(to)).Str("subject", subject).Msg("email sent")
	observability.EmailDispatches().WithLabelValues(dispatchModeSMTP, "sent").Inc()
	return true
}

// SimulatedDispatcher performs no network activity and reports a random outcome.
type SimulatedDispatcher struct {
	random func() float64
	logger zerolog.Logger
}

// NewSimulatedDispatcher constructs a development dispatcher. A nil random source uses math/rand.
func NewSimulatedDispatcher(random func() float64, logger zerolog.Logger) *SimulatedDispatcher {
	if random == nil {
		random = rand.Float64
	}
	return &SimulatedDispatcher{
		random: random,
		logger: logger.With().Str("component", "simulated_dispatcher").Logger(),
	}
}

// Mode implements Dispatcher.
func (d *SimulatedDispatcher) Mode() string {
	return dispatchModeSimulated
}

// Send implements Dispatcher. Roughly 80% of calls report success.
func (d *SimulatedDispatcher) Send(_ context.Context, to, subject, body string) bool {
	sent := d.random() < simulatedSuccessRate

	d.logger.Info().
		Str("to", maskEmail(to)).
		Str("subject", subject).
		Str("preview", preview(body, 100)).
		Bool("sent", sent).
		Msg("simulating email")

	outcome := "failed"
	if sent {
		outcome = "sent"
	}
	observability.EmailDispatches().WithLabelValues(dispatchModeSimulated, outcome).Inc()

	return sent
}
