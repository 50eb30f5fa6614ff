package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mestraaurora/aurora-api/internal/config"
	"github.com/mestraaurora/aurora-api/internal/observability"
	"github.com/mestraaurora/aurora-api/pkg/ai"
)

// StrategyDelegated names the external text-generation strategy.
const StrategyDelegated = "delegated"

const readingSystemPrompt = "Você é a Mestra Aurora, especialista em SaJu, a astrologia coreana dos Quatro Pilares do Destino. " +
	"Escreva leituras acolhedoras, detalhadas e personalizadas em português do Brasil, usando títulos em Markdown com emojis para cada seção."

var readingOutline = []string{
	"🌟 Identidade Energética",
	"🔮 Distribuição dos 5 Elementos",
	"🧠 Personalidade e Estilo de Vida",
	"💼 Carreira, Dinheiro e Oportunidades",
	"💘 Amor e Relacionamentos",
	"🩺 Saúde Energética",
	"📅 Previsão do Próximo Ano",
	"⏳ Tendências dos Próximos 5 Anos",
	"🎨 Cores, Direções e Ambientes Favoráveis",
	"❓ Sobre Sua Pergunta",
	"💫 Conclusão",
}

// DelegatedReadingGenerator asks an external model for the reading.
// Successful readings are cached in Redis when a client is supplied.
type DelegatedReadingGenerator struct {
	completer ai.Completer
	cache     *redis.Client
	cacheTTL  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewDelegatedReadingGenerator constructs the delegated strategy.
func NewDelegatedReadingGenerator(completer ai.Completer, cache *redis.Client, cfg config.AIConfig, logger zerolog.Logger) *DelegatedReadingGenerator {
	return &DelegatedReadingGenerator{
		completer: completer,
		cache:     cache,
		cacheTTL:  cfg.CacheTTL,
		timeout:   cfg.Timeout,
		logger:    logger.With().Str("component", "delegated_reading").Logger(),
		tracer:    otel.Tracer("github.com/mestraaurora/aurora-api/internal/service/reading"),
	}
}

// Strategy implements ReadingGenerator.
func (g *DelegatedReadingGenerator) Strategy() string {
	return StrategyDelegated
}

// Generate returns the model's text verbatim, or an error for any transport, timeout or shape failure.
func (g *DelegatedReadingGenerator) Generate(ctx context.Context, input ReadingInput) (string, error) {
	ctx, span := g.tracer.Start(ctx, "reading.delegated", trace.WithAttributes(
		attribute.String("model", g.completer.Model()),
	))
	defer span.End()

	prompt := buildReadingPrompt(input)
	key := g.cacheKey(prompt)

	if cached, ok := g.lookup(ctx, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		observability.Readings().WithLabelValues(StrategyDelegated).Inc()
		return cached, nil
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.completer.Complete(callCtx, ai.CompletionInput{System: readingSystemPrompt, Prompt: prompt})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delegated generation failed")
		return "", fmt.Errorf("delegated reading: %w", err)
	}

	g.store(ctx, key, text)
	observability.Readings().WithLabelValues(StrategyDelegated).Inc()

	return text, nil
}

func (g *DelegatedReadingGenerator) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(g.completer.Model() + "|" + prompt))
	return "aurora:reading:" + hex.EncodeToString(sum[:])
}

func (g *DelegatedReadingGenerator) lookup(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}

	value, err := g.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			g.logger.Warn().Err(err).Msg("reading cache lookup failed")
		}
		return "", false
	}

	return value, value != ""
}

func (g *DelegatedReadingGenerator) store(ctx context.Context, key, text string) {
	if g.cache == nil || g.cacheTTL <= 0 {
		return
	}

	if err := g.cache.Set(ctx, key, text, g.cacheTTL).Err(); err != nil {
		g.logger.Warn().Err(err).Msg("reading cache store failed")
	}
}

func buildReadingPrompt(in ReadingInput) string {
	calendar := plainText(in.CalendarType)
	if calendar == "" {
		calendar = "solar"
	}

	var b strings.Builder
	b.WriteString("Gere uma leitura completa de SaJu para a pessoa abaixo.\n\n")
	b.WriteString("# Dados\n")
	fmt.Fprintf(&b, "- Nome: %s\n", plainText(in.Name))
	fmt.Fprintf(&b, "- Sexo: %s\n", in.Sex)
	fmt.Fprintf(&b, "- Data de nascimento: %s\n", in.BirthDate.Format("02/01/2006"))
	fmt.Fprintf(&b, "- Tipo de calendário: %s\n", calendar)
	writeOptional(&b, "Hora de nascimento", in.BirthTime)
	writeOptional(&b, "Estado civil", in.MaritalStatus)
	writeOptional(&b, "Tempo de relacionamento", in.RelationshipDuration)
	writeOptional(&b, "Pergunta específica", in.Question)

	b.WriteString("\n# Estrutura\n")
	for i, section := range readingOutline {
		fmt.Fprintf(&b, "%d. %s\n", i+1, section)
	}
	b.WriteString("\nSe não houver pergunta específica, omita a seção 10. Assine como Mestra Aurora.")

	return b.String()
}

// writeOptional sanitises value; the prompt is the only place user text meets an external service.
func writeOptional(b *strings.Builder, label, value string) {
	value = plainText(value)
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

// NewReadingGenerator selects the generation strategy. Without an API key the template is used directly
// and no network I/O is ever attempted.
func NewReadingGenerator(cfg config.AIConfig, completer ai.Completer, cache *redis.Client, logger zerolog.Logger) ReadingGenerator {
	template := NewTemplateReadingGenerator()
	if !cfg.Delegated() || completer == nil {
		return template
	}

	delegated := NewDelegatedReadingGenerator(completer, cache, cfg, logger)
	return NewFallbackReadingGenerator(delegated, template, logger)
}
