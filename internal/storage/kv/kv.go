// Package kv provides the local key-value store backing the offline-first
// repositories. Values are opaque blobs; callers serialize whole collections.
package kv

// Store is a minimal blob store keyed by fixed strings.
type Store interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Put writes the whole value for key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(key string) error
}
