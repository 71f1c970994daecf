// Package telegram is the Telegram front-end of the Math 24 game: it
// deals number sets, checks submitted expressions through the game core,
// and relays AI hints.
package telegram

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/xuemaozhang/AI-math24/api/internal/game"
	"github.com/xuemaozhang/AI-math24/api/internal/hint"
	"github.com/xuemaozhang/AI-math24/api/internal/store"
)

const hintTimeout = 30 * time.Second

type Router struct {
	Bot   *tgbotapi.BotAPI
	Hints *hint.Service
	Log   *slog.Logger

	// HintRepo is optional; without it every /hint hits the model.
	HintRepo *store.HintRepo
	CacheAge time.Duration
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(cid, upd.Message)
		return
	}

	text := strings.TrimSpace(upd.Message.Text)
	if text == "" {
		return
	}
	sess, ok := getSession(cid)
	if !ok {
		r.send(cid, "No active deal. Send /new to get numbers.")
		return
	}

	res := game.Check(game.CheckRequest{
		Numbers:    sess.Numbers,
		Target:     sess.Target,
		Mode:       sess.Mode,
		Expression: text,
	})
	r.send(cid, formatCheck(res, sess))
	if res.Valid {
		clearSession(cid)
	}
}

func (r *Router) handleCommand(cid int64, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		r.send(cid, "Math 24: make the target from the dealt numbers using + - * / and parentheses, each number exactly once.\nCommands: /new [easy|hard], /hint, /giveup, /health")
	case "health":
		r.send(cid, "✅ OK")
	case "new":
		mode := strings.TrimSpace(strings.ToLower(msg.CommandArguments()))
		if mode != "hard" {
			mode = "easy"
		}
		s := &session{Numbers: deal(mode), Target: 24, Mode: mode}
		setSession(cid, s)
		r.send(cid, fmt.Sprintf("Your numbers: %s. Reach %d. Send me an expression.", joinNumbers(s.Numbers), s.Target))
	case "hint":
		sess, ok := getSession(cid)
		if !ok {
			r.send(cid, "No active deal. Send /new to get numbers.")
			return
		}
		r.sendHint(cid, sess)
	case "giveup":
		if _, ok := getSession(cid); !ok {
			r.send(cid, "Nothing to give up. Send /new to get numbers.")
			return
		}
		clearSession(cid)
		r.send(cid, "Deal dropped. Send /new for a fresh one.")
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) sendHint(cid int64, sess *session) {
	ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
	defer cancel()

	key := sess.cacheKey()
	model := r.Hints.Provider.Model()
	if r.HintRepo != nil {
		if cached, err := r.HintRepo.Find(ctx, key, model, r.CacheAge); err == nil {
			r.send(cid, "💡 "+cached)
			return
		} else if !errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("hint cache lookup failed", "err", err)
		}
	}

	out, err := r.Hints.Hint(ctx, hint.Request{
		Numbers: sess.Numbers,
		Target:  sess.Target,
		Mode:    sess.Mode,
	})
	if err != nil {
		r.Log.Error("hint failed", "chat", cid, "err", err)
		r.send(cid, "⚠️ Hint unavailable right now, try again in a moment.")
		return
	}
	if r.HintRepo != nil {
		if err := r.HintRepo.Upsert(ctx, key, model, out.Hint); err != nil {
			r.Log.Warn("hint cache save failed", "err", err)
		}
	}
	r.send(cid, "💡 "+out.Hint)
}

func formatCheck(res game.CheckResult, sess *session) string {
	if res.Valid {
		return fmt.Sprintf("✅ Correct! %s = %d. Send /new for another deal.", deref(res.Normalized), sess.Target)
	}
	var b strings.Builder
	b.WriteString("❌ Not yet.")
	if res.Value != nil {
		fmt.Fprintf(&b, " That makes %g.", *res.Value)
	}
	for _, e := range res.Errors {
		b.WriteString("\n• " + e)
	}
	for _, h := range res.Hints {
		b.WriteString("\n💡 " + h)
	}
	return b.String()
}

func joinNumbers(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *Router) send(chatID int64, text string) {
	_, _ = r.Bot.Send(tgbotapi.NewMessage(chatID, text))
}
