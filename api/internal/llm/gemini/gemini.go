// Package gemini implements the llm.Provider interface on top of the
// Google generative AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/xuemaozhang/AI-math24/api/internal/llm"
)

type Engine struct {
	APIKey    string
	ModelName string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey:    strings.TrimSpace(apiKey),
		ModelName: strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string  { return "gemini" }
func (e *Engine) Model() string { return e.ModelName }

// Generate sends prompt to Gemini and returns the first text part of the
// response. Any transport or provider error is returned to the caller
// unretried; the hint endpoint surfaces it as a gateway failure.
func (e *Engine) Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.ModelName)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: ptrInt32(opts.MaxOutputTokens),
		Temperature:     ptrFloat32(opts.Temperature),
		TopP:            ptrFloat32(opts.TopP),
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
