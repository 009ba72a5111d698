package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist — or exists but belongs to a different owner, which
// callers must not be able to tell apart.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing flight number, days below 1).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
