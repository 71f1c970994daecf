package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/xuemaozhang/AI-math24/api/internal/config"
	"github.com/xuemaozhang/AI-math24/api/internal/hint"
	"github.com/xuemaozhang/AI-math24/api/internal/llm/gemini"
	"github.com/xuemaozhang/AI-math24/api/internal/store"
	"github.com/xuemaozhang/AI-math24/api/internal/telegram"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	// --- Postgres hint cache (optional) ---
	var hintRepo *store.HintRepo
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		hintRepo = store.NewHintRepo(db)
		if err := hintRepo.Init(ctx); err != nil {
			log.Fatalf("hint cache init: %v", err)
		}
		logger.Info("db connected")
	} else {
		logger.Info("no DATABASE_URL; hint cache disabled")
	}

	// --- Telegram bot ---
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	r := &telegram.Router{
		Bot:      bot,
		Hints:    hint.NewService(gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)),
		Log:      logger,
		HintRepo: hintRepo,
		CacheAge: 24 * time.Hour,
	}

	// Liveness endpoint for the hosting platform.
	go func() {
		http.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		addr := "0.0.0.0:" + cfg.Port
		logger.Info("healthz listening", "addr", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error("healthz server error", "err", err)
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	logger.Info("math24-bot polling", "account", bot.Self.UserName)
	for upd := range updates {
		r.HandleUpdate(upd)
	}
}
