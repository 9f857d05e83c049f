// Package mirror pushes local writes to the hosted Postgres backend on a
// best-effort basis. The mirror never blocks or fails a local operation:
// every error is logged and swallowed. A nil *Mirror is a valid, disabled
// client, so call sites need no configuration checks.
package mirror

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository/postgres"
)

// Mirror is an explicitly constructed remote-mirror client.
type Mirror struct {
	projects repository.ProjectRepository
	styles   repository.StyleRepository
	prompts  repository.PromptRepository

	db  *postgres.DB
	log *zap.Logger
}

// New wires a mirror over an open Postgres pool.
func New(db *postgres.DB, log *zap.Logger) *Mirror {
	return &Mirror{
		projects: postgres.NewProjectRepo(db),
		styles:   postgres.NewStyleRepo(db),
		prompts:  postgres.NewPromptRepo(db),
		db:       db,
		log:      log,
	}
}

// newWithRepos exists for tests.
func newWithRepos(p repository.ProjectRepository, s repository.StyleRepository,
	pr repository.PromptRepository, log *zap.Logger) *Mirror {
	return &Mirror{projects: p, styles: s, prompts: pr, log: log}
}

// Close releases the underlying pool. Safe on a nil or disabled mirror.
func (m *Mirror) Close() {
	if m == nil || m.db == nil {
		return
	}
	m.db.Close()
}

// SaveProject mirrors a project upsert.
func (m *Mirror) SaveProject(ctx context.Context, p *model.TimelineProject) {
	if m == nil {
		return
	}
	if err := m.projects.Put(ctx, p); err != nil {
		m.log.Warn("mirror: save project", zap.String("id", p.ID), zap.Error(err))
	}
}

// DeleteProject mirrors a project delete.
func (m *Mirror) DeleteProject(ctx context.Context, id string) {
	if m == nil {
		return
	}
	if err := m.projects.Delete(ctx, id); err != nil {
		m.log.Warn("mirror: delete project", zap.String("id", id), zap.Error(err))
	}
}

// SaveStyle mirrors a style-reference upsert.
func (m *Mirror) SaveStyle(ctx context.Context, s *model.StyleReference) {
	if m == nil {
		return
	}
	if err := m.styles.Put(ctx, s); err != nil {
		m.log.Warn("mirror: save style", zap.String("id", s.ID.String()), zap.Error(err))
	}
}

// DeleteStyle mirrors a style-reference delete.
func (m *Mirror) DeleteStyle(ctx context.Context, id uuid.UUID) {
	if m == nil {
		return
	}
	if err := m.styles.Delete(ctx, id); err != nil {
		m.log.Warn("mirror: delete style", zap.String("id", id.String()), zap.Error(err))
	}
}

// SavePrompt mirrors one prompt-history entry.
func (m *Mirror) SavePrompt(ctx context.Context, e *model.PromptEntry) {
	if m == nil {
		return
	}
	if err := m.prompts.Append(ctx, e); err != nil {
		m.log.Warn("mirror: save prompt", zap.String("id", e.ID.String()), zap.Error(err))
	}
}

// Sync pushes every local collection to the mirror concurrently. Unlike the
// per-write paths this is user-invoked, so failures are returned.
func (m *Mirror) Sync(ctx context.Context, projects []model.TimelineProject,
	styles []model.StyleReference, prompts []model.PromptEntry) error {
	if m == nil {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i := range projects {
			if err := m.projects.Put(ctx, &projects[i]); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for i := range styles {
			if err := m.styles.Put(ctx, &styles[i]); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for i := range prompts {
			if err := m.prompts.Append(ctx, &prompts[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}
