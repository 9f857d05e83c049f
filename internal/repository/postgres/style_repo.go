package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// StyleRepo implements repository.StyleRepository against the mirror.
type StyleRepo struct{ db *DB }

// NewStyleRepo constructs a style repository.
func NewStyleRepo(db *DB) *StyleRepo { return &StyleRepo{db: db} }

// Put upserts a style reference row keyed by id.
func (r *StyleRepo) Put(ctx context.Context, s *model.StyleReference) error {
	const q = `
INSERT INTO style_references
  (id, user_id, name, image_url, color_palette, lighting, composition, mood, art_style, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (id) DO UPDATE SET
  user_id=EXCLUDED.user_id, name=EXCLUDED.name, image_url=EXCLUDED.image_url,
  color_palette=EXCLUDED.color_palette, lighting=EXCLUDED.lighting,
  composition=EXCLUDED.composition, mood=EXCLUDED.mood, art_style=EXCLUDED.art_style`
	_, err := r.db.Pool.Exec(ctx, q,
		s.ID, s.UserID, s.Name, s.ImageURL, s.Features.ColorPalette,
		s.Features.Lighting, s.Features.Composition, s.Features.Mood,
		s.Features.ArtStyle, s.CreatedAt,
	)
	return err
}

// Get returns a single style reference by id.
func (r *StyleRepo) Get(ctx context.Context, id uuid.UUID) (*model.StyleReference, error) {
	const q = `
SELECT id, user_id, name, image_url, color_palette, lighting, composition, mood, art_style, created_at
FROM style_references WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	s, err := scanStyle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// List returns style references, optionally filtered by user id, newest first.
func (r *StyleRepo) List(ctx context.Context, userID string) ([]model.StyleReference, error) {
	const qAll = `
SELECT id, user_id, name, image_url, color_palette, lighting, composition, mood, art_style, created_at
FROM style_references ORDER BY created_at DESC`
	const qUser = `
SELECT id, user_id, name, image_url, color_palette, lighting, composition, mood, art_style, created_at
FROM style_references WHERE user_id=$1 ORDER BY created_at DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if userID == "" {
		rows, err = r.db.Pool.Query(ctx, qAll)
	} else {
		rows, err = r.db.Pool.Query(ctx, qUser, userID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StyleReference
	for rows.Next() {
		s, err := scanStyle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Delete removes a style reference row; absent ids are ignored.
func (r *StyleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM style_references WHERE id=$1`, id)
	return err
}

func scanStyle(row pgx.Row) (*model.StyleReference, error) {
	var (
		s       model.StyleReference
		palette []string
		created time.Time
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.ImageURL, &palette,
		&s.Features.Lighting, &s.Features.Composition, &s.Features.Mood,
		&s.Features.ArtStyle, &created); err != nil {
		return nil, err
	}
	s.Features.ColorPalette = paletteOrEmpty(palette)
	s.CreatedAt = created
	return &s, nil
}
