// Package llm abstracts the generative-model backends used for hinting.
// Providers are constructed once at startup and passed by reference into
// the hint service; nothing in this package holds process-wide state.
package llm

import (
	"context"
	"errors"
)

// GenerateOptions bound and shape a single completion call.
type GenerateOptions struct {
	MaxOutputTokens int32
	Temperature     float32
	TopP            float32
}

// Provider is a text-generation backend.
type Provider interface {
	Name() string
	Model() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Registry holds the configured providers.
type Registry struct {
	Gemini Provider
	OpenAI Provider
}

// Get returns the provider for name; Gemini is the default.
func (r *Registry) Get(name string) (Provider, error) {
	switch name {
	case "", "gemini":
		if r.Gemini == nil {
			return nil, errors.New("gemini provider is not configured")
		}
		return r.Gemini, nil
	case "gpt", "openai":
		if r.OpenAI == nil {
			return nil, errors.New("openai provider is not configured")
		}
		return r.OpenAI, nil
	default:
		return nil, errors.New("unknown provider; use 'gemini' or 'openai'")
	}
}
