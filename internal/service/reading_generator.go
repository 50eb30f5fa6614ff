package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mestraaurora/aurora-api/internal/observability"
)

// ReadingInput is the validated submission a reading is generated from.
type ReadingInput struct {
	Name                 string
	Sex                  string
	Email                string
	BirthDate            time.Time
	CalendarType         string
	BirthTime            string
	MaritalStatus        string
	RelationshipDuration string
	Question             string
}

// ReadingGenerator produces a reading text.
type ReadingGenerator interface {
	Generate(ctx context.Context, input ReadingInput) (string, error)
	Strategy() string
}

// FallbackReadingGenerator runs primary and substitutes fallback on any primary failure.
type FallbackReadingGenerator struct {
	primary  ReadingGenerator
	fallback ReadingGenerator
	logger   zerolog.Logger
}

// NewFallbackReadingGenerator wraps primary with fallback.
func NewFallbackReadingGenerator(primary, fallback ReadingGenerator, logger zerolog.Logger) *FallbackReadingGenerator {
	return &FallbackReadingGenerator{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With().Str("component", "reading_fallback").Logger(),
	}
}

// Strategy reports the primary strategy name.
func (g *FallbackReadingGenerator) Strategy() string {
	return g.primary.Strategy()
}

// Generate never surfaces the primary's failure to the caller.
func (g *FallbackReadingGenerator) Generate(ctx context.Context, input ReadingInput) (string, error) {
	text, err := g.primary.Generate(ctx, input)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty reading")
	}
	if err == nil {
		return text, nil
	}

	g.logger.Warn().Err(err).Str("strategy", g.primary.Strategy()).Msg("reading generation failed, using fallback")
	observability.ReadingFallbacks().Inc()

	return g.fallback.Generate(ctx, input)
}
