// Package ai generates blog comments through external LLM completion APIs.
package ai

import (
	"context"
	"fmt"
)

// Provider is the interface that all LLM providers must implement.
type Provider interface {
	// GenerateComment writes a reader comment reacting to the given blog
	// title and body. The call blocks until the provider responds or its
	// HTTP client times out.
	GenerateComment(ctx context.Context, title, body string) (string, error)
}

// ProviderConfig holds the configuration needed to create a provider.
type ProviderConfig struct {
	Provider string // "openai" | "anthropic"
	APIKey   string
	Model    string
}

// NewProvider creates the appropriate provider based on config.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}
