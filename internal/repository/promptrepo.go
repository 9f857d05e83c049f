package repository

import (
	"context"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
)

// PromptRepository records generation requests for the history screen.
type PromptRepository interface {
	// Append adds one entry to the history.
	Append(ctx context.Context, e *model.PromptEntry) error
	// List returns up to limit entries, newest first (limit <= 0 means all).
	List(ctx context.Context, limit int) ([]model.PromptEntry, error)
}
