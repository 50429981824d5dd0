package repository

import "errors"

// Sentinel kinds for store errors.
var (
	// ErrStorage wraps any I/O or database failure from a backend. Callers
	// surface it without retrying; the writer is expected to re-submit.
	ErrStorage = errors.New("score storage failed")

	// ErrEmptyTeamID guards the uniqueness key: an upsert without a team
	// identifier never touches the backing medium.
	ErrEmptyTeamID = errors.New("empty team id")

	// ErrEmptyJudgeID guards the other half of the uniqueness key.
	ErrEmptyJudgeID = errors.New("empty judge id")
)
