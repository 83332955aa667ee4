package domain

import "errors"

// Error kinds returned by the core. Handlers map these to HTTP status
// codes; services wrap them with context via fmt.Errorf and %w.
var (
	// ErrValidation marks malformed input: out-of-range levels,
	// empty word or translation, unknown language.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate marks an entry that already exists for the same
	// owner, word and language.
	ErrDuplicate = errors.New("entry already exists")

	// ErrNotFound covers both a missing entry and an entry owned by
	// another user. Callers must not be able to distinguish the two.
	ErrNotFound = errors.New("entry not found")

	// ErrStorage marks a persistence failure.
	ErrStorage = errors.New("storage failure")
)
