package auth

import "errors"

// Sentinel kinds for auth errors.
var (
	ErrInvalidSession  = errors.New("invalid session token")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrEmptySecret     = errors.New("empty session secret")
	ErrEmptyJudgeID    = errors.New("empty judge id")
)
