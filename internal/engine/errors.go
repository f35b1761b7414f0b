package engine

import "errors"

// Errors returned by document operations.
var (
	// ErrDuplicateID means an object id is already present in the document.
	// Seeing it is a programming error; Document.Append panics with it.
	ErrDuplicateID = errors.New("duplicate object id")

	// ErrUnknownType indicates a type name outside the known variants.
	ErrUnknownType = errors.New("unknown object type")

	// ErrInvalidColor indicates a color that is not a hex string.
	ErrInvalidColor = errors.New("invalid color")
)
