// Package repository defines the score store contract and its two
// interchangeable backends: a flat JSON file and a relational table.
package repository

import (
	"context"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
)

// Store provides durable access to the (team, judge) score mapping.
// Callers depend only on this interface; the file and relational backends
// satisfy the same JSON-shaped contract.
type Store interface {
	// GetAll returns every team's merged record. An empty backing medium
	// yields an empty book, not an error.
	GetAll(ctx context.Context) (model.ScoreBook, error)

	// Upsert inserts or replaces the entry for the exact (teamID,
	// entry.UpdatedBy) pair and returns the team's updated merged record.
	// Either the whole record is written or none of it.
	Upsert(ctx context.Context, teamID string, entry model.ScoreEntry) (model.TeamScoreRecord, error)
}
