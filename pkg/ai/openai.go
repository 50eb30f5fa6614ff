package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	aiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aurora",
		Subsystem: "ai",
		Name:      "completion_duration_seconds",
		Help:      "Duration of delegated text-generation requests",
	}, []string{"model"})

	aiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aurora",
		Subsystem: "ai",
		Name:      "completion_failures_total",
		Help:      "Number of delegated text-generation failures",
	}, []string{"model"})
)

// OpenAIConfig defines configuration options for an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	HTTPClient  *http.Client
	Logger      zerolog.Logger
}

// OpenAICompleter implements Completer against the chat completion API.
type OpenAICompleter struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAICompleter builds a completer using the provided configuration.
func NewOpenAICompleter(cfg OpenAIConfig) (*OpenAICompleter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2048
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}

	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		config.HTTPClient = cfg.HTTPClient
	}

	return &OpenAICompleter{
		client: openai.NewClientWithConfig(config),
		cfg:    cfg,
		tracer: otel.Tracer("github.com/mestraaurora/aurora-api/pkg/ai/openai"),
		logger: logger.With().Str("component", "openai_completer").Logger(),
	}, nil
}

// Model returns the configured model identifier.
func (c *OpenAICompleter) Model() string {
	return c.cfg.Model
}

// Complete sends the prompt and returns the text of the first choice.
func (c *OpenAICompleter) Complete(parent context.Context, input CompletionInput) (string, error) {
	ctx, span := c.tracer.Start(parent, "openai.complete", trace.WithAttributes(
		attribute.String("model", c.cfg.Model),
	))
	defer span.End()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: input.System},
			{Role: openai.ChatMessageRoleUser, Content: input.Prompt},
		},
	})
	aiDuration.WithLabelValues(c.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", c.fail(span, fmt.Errorf("openai complete: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", c.fail(span, fmt.Errorf("openai complete: no choices returned: %w", ErrEmptyCompletion))
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", c.fail(span, fmt.Errorf("openai complete: %w", ErrEmptyCompletion))
	}

	span.SetAttributes(attribute.Int("completion.tokens", resp.Usage.CompletionTokens))
	c.logger.Debug().Int("total_tokens", resp.Usage.TotalTokens).Msg("completion received")

	return content, nil
}

func (c *OpenAICompleter) fail(span trace.Span, err error) error {
	aiFailures.WithLabelValues(c.cfg.Model).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
