package local

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/storage/kv"
)

// StyleRepo implements repository.StyleRepository over the local store.
type StyleRepo struct{ store kv.Store }

// NewStyleRepo constructs a style repository.
func NewStyleRepo(store kv.Store) *StyleRepo { return &StyleRepo{store: store} }

// Put inserts or replaces a style reference keyed by id.
func (r *StyleRepo) Put(_ context.Context, s *model.StyleReference) error {
	list, err := loadList[model.StyleReference](r.store, keyStyles)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == s.ID {
			list[i] = *s
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, *s)
	}
	return saveList(r.store, keyStyles, list)
}

// Get loads a style reference by id.
func (r *StyleRepo) Get(_ context.Context, id uuid.UUID) (*model.StyleReference, error) {
	list, err := loadList[model.StyleReference](r.store, keyStyles)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			s := list[i]
			return &s, nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns style references for a user (all users when userID is empty),
// newest first.
func (r *StyleRepo) List(_ context.Context, userID string) ([]model.StyleReference, error) {
	list, err := loadList[model.StyleReference](r.store, keyStyles)
	if err != nil {
		return nil, err
	}
	out := make([]model.StyleReference, 0, len(list))
	for i := range list {
		if userID != "" && list[i].UserID != userID {
			continue
		}
		out = append(out, list[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a style reference by id; absent ids are ignored.
func (r *StyleRepo) Delete(_ context.Context, id uuid.UUID) error {
	list, err := loadList[model.StyleReference](r.store, keyStyles)
	if err != nil {
		return err
	}
	out := list[:0]
	for i := range list {
		if list[i].ID != id {
			out = append(out, list[i])
		}
	}
	return saveList(r.store, keyStyles, out)
}
