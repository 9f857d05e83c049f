// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// ProjectRepository provides CRUD access to timeline projects.
type ProjectRepository interface {
	// Put inserts or replaces a project keyed by id.
	Put(ctx context.Context, p *model.TimelineProject) error
	// Get loads a project by id.
	Get(ctx context.Context, id string) (*model.TimelineProject, error)
	// List returns all projects ordered by creation time descending.
	List(ctx context.Context) ([]model.TimelineProject, error)
	// Delete removes a project; deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
