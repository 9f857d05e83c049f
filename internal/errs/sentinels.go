// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates malformed caller input
	// (e.g. mismatched styles/ratios lengths).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists indicates an entity with the same id is already stored.
	ErrAlreadyExists = errors.New("already exists")
)
