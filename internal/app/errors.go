package app

import "errors"

// Sentinel kinds for service errors. Both reject the request before any
// mutation is attempted.
var (
	ErrUnauthorized = errors.New("unauthenticated caller")
	ErrValidation   = errors.New("missing required fields")
)
