package integrity

import "errors"

var (
	// ErrNotFound is the normal negative outcome: the delete target does not
	// exist (or is already soft-deleted) in the given school. No repair is
	// performed.
	ErrNotFound = errors.New("integrity: entity not found")

	// ErrUnknownEntity means the entity type has no descriptor in the
	// registry. Always a programming error, never user input.
	ErrUnknownEntity = errors.New("integrity: unknown entity type")
)
