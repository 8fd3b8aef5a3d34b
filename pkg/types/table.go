package types

import "errors"

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity struct.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table.
	Fetch(filter map[string]any) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Entity validation errors.
var (
	ErrEmptyTriple         = errors.New("triple must not be empty")
	ErrInvalidSource       = errors.New("invalid triple source")
	ErrInvalidEndian       = errors.New("invalid endianness")
	ErrInvalidPointerWidth = errors.New("pointer width must be 16, 32, or 64")
	ErrInvalidFamily       = errors.New("invalid target family")
	ErrInvalidPanic        = errors.New("invalid panic strategy")
	ErrEmptyFeature        = errors.New("feature must not be empty")
	ErrDuplicateTriple     = errors.New("triple already registered")
	ErrBuiltinImmutable    = errors.New("builtin platform records cannot be removed")
	ErrInvalidFilter       = errors.New("invalid filter value type")
)
