package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// StyleRepository provides CRUD access to style references.
type StyleRepository interface {
	// Put inserts or replaces a style reference keyed by id.
	Put(ctx context.Context, s *model.StyleReference) error
	// Get loads a style reference by id.
	Get(ctx context.Context, id uuid.UUID) (*model.StyleReference, error)
	// List returns style references, optionally filtered by user id
	// (empty userID means all), newest first.
	List(ctx context.Context, userID string) ([]model.StyleReference, error)
	// Delete removes a style reference; deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
