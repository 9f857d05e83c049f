package local

import (
	"context"
	"sort"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/storage/kv"
)

// PromptRepo implements repository.PromptRepository over the local store.
type PromptRepo struct{ store kv.Store }

// NewPromptRepo constructs a prompt-history repository.
func NewPromptRepo(store kv.Store) *PromptRepo { return &PromptRepo{store: store} }

// Append adds one entry to the history.
func (r *PromptRepo) Append(_ context.Context, e *model.PromptEntry) error {
	list, err := loadList[model.PromptEntry](r.store, keyPrompts)
	if err != nil {
		return err
	}
	list = append(list, *e)
	return saveList(r.store, keyPrompts, list)
}

// List returns up to limit entries, newest first (limit <= 0 means all).
func (r *PromptRepo) List(_ context.Context, limit int) ([]model.PromptEntry, error) {
	list, err := loadList[model.PromptEntry](r.store, keyPrompts)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
