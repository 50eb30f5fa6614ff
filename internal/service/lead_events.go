package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mestraaurora/aurora-api/internal/models"
)

// LeadPublisher announces stored leads to downstream consumers.
type LeadPublisher interface {
	PublishLeadCreated(ctx context.Context, lead models.Lead) error
}

type leadCreatedEvent struct {
	ID               uint      `json:"id"`
	Name             string    `json:"nome"`
	Email            string    `json:"email"`
	Sex              string    `json:"sexo"`
	BirthDate        string    `json:"data_nascimento"`
	MarketingConsent bool      `json:"marketing_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

type subjectPublisher interface {
	Publish(subject string, data []byte) error
}

// NATSLeadPublisher publishes lead events on a NATS subject.
type NATSLeadPublisher struct {
	conn    subjectPublisher
	subject string
}

// NewNATSLeadPublisher constructs a publisher on subject.
func NewNATSLeadPublisher(conn *nats.Conn, subject string) *NATSLeadPublisher {
	return &NATSLeadPublisher{conn: conn, subject: subject}
}

// PublishLeadCreated implements LeadPublisher.
func (p *NATSLeadPublisher) PublishLeadCreated(_ context.Context, lead models.Lead) error {
	payload, err := json.Marshal(newLeadCreatedEvent(lead))
	if err != nil {
		return fmt.Errorf("encode lead event: %w", err)
	}

	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish lead event: %w", err)
	}

	return nil
}

func newLeadCreatedEvent(lead models.Lead) leadCreatedEvent {
	return leadCreatedEvent{
		ID:               lead.ID,
		Name:             lead.Name,
		Email:            lead.Email,
		Sex:              lead.Sex,
		BirthDate:        lead.BirthDate.Format("2006-01-02"),
		MarketingConsent: lead.MarketingConsent,
		CreatedAt:        lead.CreatedAt,
	}
}
