package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/xuemaozhang/AI-math24/api/internal/config"
	"github.com/xuemaozhang/AI-math24/api/internal/handle"
	"github.com/xuemaozhang/AI-math24/api/internal/hint"
	"github.com/xuemaozhang/AI-math24/api/internal/httpserver"
	"github.com/xuemaozhang/AI-math24/api/internal/llm"
	"github.com/xuemaozhang/AI-math24/api/internal/llm/gemini"
	"github.com/xuemaozhang/AI-math24/api/internal/llm/openai"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	reg := &llm.Registry{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		reg.OpenAI = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	provider, err := reg.Get(cfg.Provider)
	if err != nil {
		log.Fatalf("provider %q: %v", cfg.Provider, err)
	}

	h := handle.New(hint.NewService(provider))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/check", h.Check)
	mux.HandleFunc("/hint", h.Hint)

	addr := ":" + cfg.Port
	logger.Info("math24-api listening", "addr", addr, "provider", provider.Name(), "model", provider.Model())
	if err := httpserver.Start(addr, httpserver.CORS(httpserver.RequestLogger(logger, mux))); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
