package local

import (
	"context"
	"sort"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/errs"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/storage/kv"
)

// ProjectRepo implements repository.ProjectRepository over the local store.
type ProjectRepo struct{ store kv.Store }

// NewProjectRepo constructs a project repository.
func NewProjectRepo(store kv.Store) *ProjectRepo { return &ProjectRepo{store: store} }

// Put inserts or replaces a project keyed by id.
func (r *ProjectRepo) Put(_ context.Context, p *model.TimelineProject) error {
	list, err := loadList[model.TimelineProject](r.store, keyProjects)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, *p)
	}
	return saveList(r.store, keyProjects, list)
}

// Get loads a project by id.
func (r *ProjectRepo) Get(_ context.Context, id string) (*model.TimelineProject, error) {
	list, err := loadList[model.TimelineProject](r.store, keyProjects)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			p := list[i]
			return &p, nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(_ context.Context) ([]model.TimelineProject, error) {
	list, err := loadList[model.TimelineProject](r.store, keyProjects)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Delete removes a project by id; absent ids are ignored.
func (r *ProjectRepo) Delete(_ context.Context, id string) error {
	list, err := loadList[model.TimelineProject](r.store, keyProjects)
	if err != nil {
		return err
	}
	out := list[:0]
	for i := range list {
		if list[i].ID != id {
			out = append(out, list[i])
		}
	}
	return saveList(r.store, keyProjects, out)
}
