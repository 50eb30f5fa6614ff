package ai

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the endpoint answers without usable text.
var ErrEmptyCompletion = errors.New("completion contained no text")

// CompletionInput carries a single system + user exchange.
type CompletionInput struct {
	System string
	Prompt string
}

// Completer produces free text from a prompt using a text-generation model.
type Completer interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
	Model() string
}
