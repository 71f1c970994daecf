// Package hint turns game state into a natural-language prompt for an
// injected llm.Provider and post-processes the reply, substituting a
// deterministic local fallback when the model's answer is degenerate.
package hint

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuemaozhang/AI-math24/api/internal/expr"
	"github.com/xuemaozhang/AI-math24/api/internal/llm"
)

// maxHintRunes caps a hint even when the model drifts long.
const maxHintRunes = 240

// minHintWords is the degenerate-reply threshold that engages the fallback.
const minHintWords = 6

// Request is one /hint call. Expression may be partial or empty; Solution,
// when set, is a known valid solve that must never be shown verbatim.
type Request struct {
	Numbers    []int
	Target     int
	Mode       string
	Expression string
	Solution   string
}

// Response carries the hint text and the model that produced it.
type Response struct {
	Hint  string
	Model string
}

// Service produces AI hints through an injected provider.
type Service struct {
	Provider llm.Provider
}

func NewService(p llm.Provider) *Service { return &Service{Provider: p} }

// Hint builds the game-state prompt, delegates to the provider, and
// post-processes the reply. Parse and evaluation failures on the player's
// partial expression only shape the prompt and the fallback; they are
// never surfaced. A provider failure is returned as an error and is the
// caller's problem.
func (s *Service) Hint(ctx context.Context, req Request) (Response, error) {
	used := expr.Numbers(req.Expression)
	remaining := multisetDiff(req.Numbers, used)

	parseNote := "no expression yet"
	if strings.TrimSpace(req.Expression) != "" {
		if _, err := expr.Parse(req.Expression); err != nil {
			parseNote = "expression not valid yet: " + err.Error()
		} else {
			parseNote = "expression parses"
		}
	}

	// Evaluated purely to pick the fallback tone; failures stay silent.
	var value *float64
	if strings.TrimSpace(req.Expression) != "" {
		if v, err := expr.Eval(req.Expression); err == nil {
			value = &v
		}
	}

	var solutionOps []string
	var openingMove string
	if req.Solution != "" {
		solutionOps = expr.Operators(req.Solution)
		openingMove = OpeningMove(req.Solution)
	}

	prompt := buildPrompt(req, used, remaining, parseNote, openingMove, solutionOps)

	text, err := s.Provider.Generate(ctx, prompt, llm.GenerateOptions{
		MaxOutputTokens: 80,
		Temperature:     0.85,
		TopP:            0.9,
	})
	if err != nil {
		return Response{}, fmt.Errorf("hint generation failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		text = "Try pairing numbers into factors of the target."
	}

	line, _, _ := strings.Cut(stripCodeFences(text), "\n")
	line = clampRunes(line, maxHintRunes)
	if len(strings.Fields(line)) < minHintWords {
		line = fallback(req, value, remaining)
	}
	return Response{Hint: line, Model: s.Provider.Model()}, nil
}

// multisetDiff removes used from given one occurrence at a time; counts
// never go negative.
func multisetDiff(given, used []int) []int {
	counts := make(map[int]int, len(used))
	for _, n := range used {
		counts[n]++
	}
	var out []int
	for _, n := range given {
		if counts[n] > 0 {
			counts[n]--
			continue
		}
		out = append(out, n)
	}
	return out
}

// stripCodeFences unwraps a reply the model put into a markdown block.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clampRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
