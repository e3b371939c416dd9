package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers translate
// them into HTTP status codes with errors.Is.
var (
	// ErrNotFound marks a lookup whose target row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a request rejected before any write was attempted.
	ErrValidation = errors.New("validation failed")
)
