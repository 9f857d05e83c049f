package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// ProjectRepo implements repository.ProjectRepository against the mirror.
type ProjectRepo struct{ db *DB }

// NewProjectRepo constructs a project repository.
func NewProjectRepo(db *DB) *ProjectRepo { return &ProjectRepo{db: db} }

// Put upserts a project row keyed by id.
func (r *ProjectRepo) Put(ctx context.Context, p *model.TimelineProject) error {
	doc, err := keyframesToJSON(p.Keyframes)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO timeline_projects
  (id, name, duration, fps, resolution, audio_url, audio_reactive, keyframes, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (id) DO UPDATE SET
  name=EXCLUDED.name, duration=EXCLUDED.duration, fps=EXCLUDED.fps,
  resolution=EXCLUDED.resolution, audio_url=EXCLUDED.audio_url,
  audio_reactive=EXCLUDED.audio_reactive, keyframes=EXCLUDED.keyframes,
  updated_at=EXCLUDED.updated_at`
	_, err = r.db.Pool.Exec(ctx, q,
		p.ID, p.Name, p.Duration, int(p.FPS), string(p.Resolution),
		nullableText(p.AudioURL), p.AudioReactive, doc, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// Get returns a single project by id.
func (r *ProjectRepo) Get(ctx context.Context, id string) (*model.TimelineProject, error) {
	const q = `
SELECT id, name, duration, fps, resolution, audio_url, audio_reactive, keyframes, created_at, updated_at
FROM timeline_projects WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.TimelineProject, error) {
	const q = `
SELECT id, name, duration, fps, resolution, audio_url, audio_reactive, keyframes, created_at, updated_at
FROM timeline_projects ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TimelineProject
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Delete removes a project row; absent ids are ignored.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM timeline_projects WHERE id=$1`, id)
	return err
}

func scanProject(row pgx.Row) (*model.TimelineProject, error) {
	var (
		p        model.TimelineProject
		fps      int
		res      string
		audioURL *string
		doc      []byte
		created  time.Time
		updated  time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Duration, &fps, &res, &audioURL,
		&p.AudioReactive, &doc, &created, &updated); err != nil {
		return nil, err
	}
	kfs, err := keyframesFromJSON(doc)
	if err != nil {
		return nil, err
	}
	p.FPS = model.FPS(fps)
	p.Resolution = model.Resolution(res)
	p.AudioURL = textOrEmpty(audioURL)
	p.Keyframes = kfs
	p.CreatedAt = created
	p.UpdatedAt = updated
	return &p, nil
}
