package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
}

// Sender delivers a message through a mail transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender opens one SMTP session per message.
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender builds a sender for the configured relay.
func NewSMTPSender(cfg Config) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.SSL

	return &SMTPSender{dialer: dialer}
}

// Send dials the relay, authenticates and sends msg.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if msg.To == "" {
		return fmt.Errorf("smtp send: recipient is required")
	}

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return m
}
