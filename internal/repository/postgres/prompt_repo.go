package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// PromptRepo implements repository.PromptRepository against the mirror.
type PromptRepo struct{ db *DB }

// NewPromptRepo constructs a prompt-history repository.
func NewPromptRepo(db *DB) *PromptRepo { return &PromptRepo{db: db} }

// Append inserts one history row. Replays of the same id are ignored so a
// best-effort resync never duplicates history.
func (r *PromptRepo) Append(ctx context.Context, e *model.PromptEntry) error {
	const q = `
INSERT INTO prompt_history (id, prompt, kind, result_url, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO NOTHING`
	_, err := r.db.Pool.Exec(ctx, q, e.ID, e.Prompt, string(e.Kind), e.ResultURL, e.CreatedAt)
	return err
}

// List returns up to limit entries, newest first (limit <= 0 means all).
func (r *PromptRepo) List(ctx context.Context, limit int) ([]model.PromptEntry, error) {
	const qAll = `
SELECT id, prompt, kind, result_url, created_at
FROM prompt_history ORDER BY created_at DESC`
	const qLim = qAll + ` LIMIT $1`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Pool.Query(ctx, qLim, limit)
	} else {
		rows, err = r.db.Pool.Query(ctx, qAll)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PromptEntry
	for rows.Next() {
		var (
			e       model.PromptEntry
			kind    string
			created time.Time
		)
		if err := rows.Scan(&e.ID, &e.Prompt, &kind, &e.ResultURL, &created); err != nil {
			return nil, err
		}
		e.Kind = model.GenerationKind(kind)
		e.CreatedAt = created
		out = append(out, e)
	}
	return out, rows.Err()
}
