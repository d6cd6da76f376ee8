package providers

import (
	"context"
)

// Provider defines the interface for the language-model collaborator.
// Implementations return the raw text completion; callers decide what
// to make of it.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete performs a text completion for the given prompt
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest represents a single completion request
type CompletionRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}
