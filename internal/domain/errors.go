package domain

import "errors"

// Sentinel errors shared by all repositories and services.
// The HTTP adapter maps them to status codes.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrDuplicate  = errors.New("duplicate entry")
	ErrValidation = errors.New("validation failed")
)
