package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mestraaurora/aurora-api/internal/dto"
	"github.com/mestraaurora/aurora-api/internal/observability"
)

const contactSubjectPrefix = "[Contato Mestra Aurora] "

// ErrContactDelivery indicates the relay could not deliver the message to the operator inbox.
var ErrContactDelivery = errors.New("contact message delivery failed")

// ContactService relays contact form messages to the operator inbox. Nothing is persisted.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) error
}

type contactService struct {
	validator  *SubmissionValidator
	dispatcher Dispatcher
	inbox      string
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewContactService constructs a contact relay that delivers to inbox.
func NewContactService(validator *SubmissionValidator, dispatcher Dispatcher, inbox string, logger zerolog.Logger) ContactService {
	return &contactService{
		validator:  validator,
		dispatcher: dispatcher,
		inbox:      inbox,
		logger:     logger.With().Str("component", "contact_service").Logger(),
		tracer:     otel.Tracer("github.com/mestraaurora/aurora-api/internal/service/contact"),
	}
}

func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) error {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if err := s.validator.ContactError(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.ContactMessages().WithLabelValues("invalid").Inc()
		return err
	}

	subject := contactSubjectPrefix + plainText(req.Subject)
	body := formatContactBody(req)

	if !s.dispatcher.Send(ctx, s.inbox, subject, body) {
		span.SetStatus(codes.Error, "delivery failed")
		observability.ContactMessages().WithLabelValues("failed").Inc()
		s.logger.Warn().Str("email", maskEmail(req.Email)).Msg("contact message not delivered")
		return ErrContactDelivery
	}

	observability.ContactMessages().WithLabelValues("sent").Inc()
	s.logger.Info().Str("email", maskEmail(req.Email)).Msg("contact message relayed")
	span.SetStatus(codes.Ok, "delivered")

	return nil
}

func formatContactBody(req dto.ContactRequest) string {
	return fmt.Sprintf("\nNova mensagem de contato:\n\nNome: %s\nE-mail: %s\nAssunto: %s\n\nMensagem:\n%s\n",
		plainText(req.Name),
		plainText(req.Email),
		plainText(req.Subject),
		plainText(req.Message),
	)
}
