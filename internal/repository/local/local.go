// Package local implements the repository interfaces over the on-device
// key-value store. Each entity type lives as one JSON list under one fixed
// key; reads deserialize the whole list and writes serialize it back. That
// keeps the store dumb and the repositories swappable for an embedded
// database later.
package local

import (
	"encoding/json"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/storage/kv"
)

// Fixed collection keys in the local store.
const (
	keyProjects = "timeline_projects"
	keyStyles   = "style_references"
	keyPrompts  = "prompt_history"
)

func loadList[T any](store kv.Store, key string) ([]T, error) {
	b, ok, err := store.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func saveList[T any](store kv.Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return store.Put(key, b)
}
