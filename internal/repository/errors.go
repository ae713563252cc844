package repository

import "errors"

// The error taxonomy surfaced to handlers. Everything the data layer
// returns is classified as one of these; handlers map them to HTTP codes.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrPartialBatch       = errors.New("partial batch failure")
)
