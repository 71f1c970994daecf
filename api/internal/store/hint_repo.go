// Package store caches generated hints in Postgres so the Telegram bot
// does not call the model twice for the same deal. The HTTP API never
// touches this package; /check and /hint stay stateless.
package store

import (
	"context"
	"database/sql"
	"time"
)

var ErrNotFound = sql.ErrNoRows

type HintRepo struct{ DB *sql.DB }

func NewHintRepo(db *sql.DB) *HintRepo { return &HintRepo{DB: db} }

// Init creates the cache table when it does not exist yet.
func (r *HintRepo) Init(ctx context.Context) error {
	const q = `
create table if not exists math24_hints_cache (
	puzzle_key text not null,
	model      text not null,
	hint       text not null,
	created_at timestamptz not null default now(),
	primary key (puzzle_key, model)
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// Find returns the cached hint for (puzzleKey, model). If maxAge > 0 and
// the row is older, it returns sql.ErrNoRows so the caller asks the model
// again.
func (r *HintRepo) Find(ctx context.Context, puzzleKey, model string, maxAge time.Duration) (string, error) {
	const q = `select hint, created_at
	           from math24_hints_cache
	           where puzzle_key=$1 and model=$2`
	var (
		hint string
		ts   time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, puzzleKey, model).Scan(&hint, &ts); err != nil {
		return "", err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return "", sql.ErrNoRows
	}
	return hint, nil
}

// Upsert saves or refreshes a hint. PK: (puzzle_key, model).
func (r *HintRepo) Upsert(ctx context.Context, puzzleKey, model, hint string) error {
	const q = `
insert into math24_hints_cache(puzzle_key, model, hint)
values ($1,$2,$3)
on conflict (puzzle_key, model)
do update set hint=excluded.hint, created_at=now()`
	_, err := r.DB.ExecContext(ctx, q, puzzleKey, model, hint)
	return err
}
