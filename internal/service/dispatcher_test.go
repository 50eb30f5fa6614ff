package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mestraaurora/aurora-api/pkg/mailer"
)

type stubSender struct {
	err  error
	sent []mailer.Message
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func TestSMTPDispatcherSendsWithConfiguredSender(t *testing.T) {
	sender := &stubSender{}
	d := NewSMTPDispatcher(sender, "Mestra Aurora <noreply@mestraaurora.xyz>", testLogger())

	require.True(t, d.Send(context.Background(), "maria@example.com", "Sua leitura", "texto"))
	require.Len(t, sender.sent, 1)
	require.Equal(t, mailer.Message{
		From:    "Mestra Aurora <noreply@mestraaurora.xyz>",
		To:      "maria@example.com",
		Subject: "Sua leitura",
		Body:    "texto",
	}, sender.sent[0])
	require.Equal(t, "smtp", d.Mode())
}

func TestSMTPDispatcherReportsTransportFailure(t *testing.T) {
	d := NewSMTPDispatcher(&stubSender{err: errors.New("535 auth failed")}, "noreply@example.com", testLogger())
	require.False(t, d.Send(context.Background(), "maria@example.com", "s", "b"))
}

func TestSimulatedDispatcherUsesRandomSource(t *testing.T) {
	require.True(t, NewSimulatedDispatcher(func() float64 { return 0.1 }, testLogger()).Send(context.Background(), "a@b.co", "s", "b"))
	require.False(t, NewSimulatedDispatcher(func() float64 { return 0.95 }, testLogger()).Send(context.Background(), "a@b.co", "s", "b"))
	require.Equal(t, "simulated", NewSimulatedDispatcher(nil, testLogger()).Mode())
}

func TestSimulatedDispatcherDefaultSourceReturnsBoolean(t *testing.T) {
	d := NewSimulatedDispatcher(nil, testLogger())
	for i := 0; i < 20; i++ {
		_ = d.Send(context.Background(), "a@b.co", "s", "b")
	}
}
