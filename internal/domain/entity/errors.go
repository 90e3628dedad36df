package entity

import "tuition/internal/errors"

// Validation sentinels returned by entity Validate methods. Callers match them
// with errors.Is and translate them to application errors.
var (
	// ErrInvalidEnum marks a value outside an enumerated set.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrInvalidValue marks a structurally invalid value.
	ErrInvalidValue = errors.New("invalid value")
	// ErrDuplicateID marks a repeated natural key inside one collection.
	ErrDuplicateID = errors.New("duplicate identifier")
)
