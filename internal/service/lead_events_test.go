package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mestraaurora/aurora-api/internal/models"
)

func TestLeadCreatedEventPayload(t *testing.T) {
	createdAt := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	lead := models.Lead{
		ID:               7,
		Name:             "Maria Silva",
		Email:            "maria@example.com",
		Sex:              "feminino",
		BirthDate:        time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		MarketingConsent: true,
		CreatedAt:        createdAt,
	}

	raw, err := json.Marshal(newLeadCreatedEvent(lead))
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Equal(t, map[string]interface{}{
		"id":                float64(7),
		"nome":              "Maria Silva",
		"email":             "maria@example.com",
		"sexo":              "feminino",
		"data_nascimento":   "1990-05-15",
		"marketing_consent": true,
		"created_at":        "2026-01-02T03:04:05Z",
	}, payload)
}

type capturedPublish struct {
	subject string
	data    []byte
	err     error
}

func (c *capturedPublish) Publish(subject string, data []byte) error {
	c.subject = subject
	c.data = data
	return c.err
}

func TestNATSLeadPublisherPublishesOnSubject(t *testing.T) {
	conn := &capturedPublish{}
	publisher := &NATSLeadPublisher{conn: conn, subject: "aurora.leads.created"}

	lead := models.Lead{ID: 3, Name: "Ana", Email: "ana@example.com", BirthDate: time.Date(2001, time.March, 9, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, publisher.PublishLeadCreated(context.Background(), lead))

	require.Equal(t, "aurora.leads.created", conn.subject)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(conn.data, &payload))
	require.Equal(t, "Ana", payload["nome"])
	require.Equal(t, "2001-03-09", payload["data_nascimento"])
}

func TestNATSLeadPublisherWrapsPublishError(t *testing.T) {
	conn := &capturedPublish{err: errors.New("nats: connection closed")}
	publisher := &NATSLeadPublisher{conn: conn, subject: "aurora.leads.created"}

	err := publisher.PublishLeadCreated(context.Background(), models.Lead{Name: "Ana"})
	require.ErrorContains(t, err, "publish lead event")
}
