package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mestraaurora/aurora-api/internal/dto"
	"github.com/mestraaurora/aurora-api/internal/models"
	"github.com/mestraaurora/aurora-api/internal/observability"
	"github.com/mestraaurora/aurora-api/internal/repository"
)

// ReadingService runs the reading pipeline: validate, store lead, generate, email, respond.
type ReadingService interface {
	Request(ctx context.Context, req dto.ReadingRequest) (dto.ReadingResponse, error)
	// Wait blocks until background lead writes finish or ctx is done.
	Wait(ctx context.Context) error
}

// ReadingServiceConfig carries the pipeline collaborators.
type ReadingServiceConfig struct {
	Leads        repository.LeadRepository
	Events       LeadPublisher
	Generator    ReadingGenerator
	Dispatcher   Dispatcher
	Validator    *SubmissionValidator
	Subject      string
	WriteTimeout time.Duration
	Logger       zerolog.Logger
}

type readingService struct {
	leads        repository.LeadRepository
	events       LeadPublisher
	generator    ReadingGenerator
	dispatcher   Dispatcher
	validator    *SubmissionValidator
	subject      string
	writeTimeout time.Duration
	logger       zerolog.Logger
	tracer       trace.Tracer
	pending      sync.WaitGroup
}

// NewReadingService constructs the reading pipeline.
func NewReadingService(cfg ReadingServiceConfig) ReadingService {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &readingService{
		leads:        cfg.Leads,
		events:       cfg.Events,
		generator:    cfg.Generator,
		dispatcher:   cfg.Dispatcher,
		validator:    cfg.Validator,
		subject:      cfg.Subject,
		writeTimeout: timeout,
		logger:       cfg.Logger.With().Str("component", "reading_service").Logger(),
		tracer:       otel.Tracer("github.com/mestraaurora/aurora-api/internal/service/reading"),
	}
}

func (s *readingService) Request(ctx context.Context, req dto.ReadingRequest) (dto.ReadingResponse, error) {
	ctx, span := s.tracer.Start(ctx, "reading.request")
	defer span.End()

	if errs := s.validator.ReadingErrors(req); len(errs) > 0 {
		span.SetStatus(codes.Error, "validation failed")
		s.logger.Debug().Strs("errors", errs).Msg("reading request rejected")
		return dto.ReadingResponse{}, &ValidationError{Errors: errs}
	}

	birthDate, err := parseBirthDate(req.DataNascimento)
	if err != nil {
		return dto.ReadingResponse{}, &ValidationError{Errors: []string{readingRuleMessages["DataNascimento.birthdate"]}}
	}

	input := ReadingInput{
		Name:                 strings.TrimSpace(req.Nome),
		Sex:                  req.Sexo,
		Email:                strings.TrimSpace(req.Email),
		BirthDate:            birthDate,
		CalendarType:         strings.TrimSpace(req.TipoCalendario),
		BirthTime:            strings.TrimSpace(req.HoraNascimento),
		MaritalStatus:        strings.TrimSpace(req.EstadoCivil),
		RelationshipDuration: strings.TrimSpace(req.TempoRelacionamento),
		Question:             strings.TrimSpace(req.Pergunta),
	}

	s.storeLeadAsync(ctx, models.Lead{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            optionalString(req.Telefone),
		Sex:              req.Sexo,
		BirthDate:        birthDate,
		MaritalStatus:    optionalString(req.EstadoCivil),
		Question:         optionalString(req.Pergunta),
		MarketingConsent: true,
	})

	text, err := s.generator.Generate(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return dto.ReadingResponse{}, fmt.Errorf("generate reading: %w", err)
	}

	sent := s.dispatcher.Send(ctx, input.Email, s.subject, text)
	span.SetAttributes(attribute.Bool("email.sent", sent))

	return dto.ReadingResponse{Success: true, Leitura: text, EmailSent: sent}, nil
}

// storeLeadAsync inserts the lead in the background. Failures are logged and never reach the caller.
func (s *readingService) storeLeadAsync(ctx context.Context, lead models.Lead) {
	bg := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		writeCtx, cancel := context.WithTimeout(bg, s.writeTimeout)
		defer cancel()

		if err := s.leads.Create(writeCtx, &lead); err != nil {
			observability.LeadWrites().WithLabelValues("failed").Inc()
			s.logger.Error().Err(err).Str("email", maskEmail(lead.Email)).Msg("failed to save lead")
			return
		}

		observability.LeadWrites().WithLabelValues("stored").Inc()
		s.logger.Info().Uint("lead_id", lead.ID).Msg("lead saved")

		if s.events == nil {
			return
		}
		if err := s.events.PublishLeadCreated(writeCtx, lead); err != nil {
			s.logger.Warn().Err(err).Uint("lead_id", lead.ID).Msg("failed to publish lead event")
		}
	}()
}

func (s *readingService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
