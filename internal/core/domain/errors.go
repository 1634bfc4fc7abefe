package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTemplateNotFound indicates no template is registered for the
	// requested court/procedure key.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUnsupportedFormat indicates the template file extension is not
	// recognised by any renderer.
	ErrUnsupportedFormat = errors.New("unsupported template format")

	// ErrSlotCapacity indicates the creditor count exceeds the addressable
	// slots of the Tokyo District Court form (21 general + 8 final).
	ErrSlotCapacity = errors.New("creditor count exceeds slot capacity")
)
