// Package ranking reduces the full score book into an ordered standing.
// It is a pure function of the store's contents: no I/O, no mutation.
package ranking

import (
	"sort"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/scoring"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/types"
)

// UnknownTeam labels records whose identifier is empty. Rows arrive from
// two backends with different key conventions, so a missing key has to map
// somewhere deterministic.
const UnknownTeam = "Unknown Team"

// Rank groups every judge entry by team, totals the six-category sums, and
// orders teams by total descending. Ties keep their grouping order, which
// is made deterministic by sorting team keys first; permuting the input
// never changes totals or judge counts.
func Rank(book model.ScoreBook) []types.Standing {
	keys := make([]string, 0, len(book))
	for k := range book {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	standings := make([]types.Standing, 0, len(keys))
	for _, k := range keys {
		rec := book[k]
		total := 0
		for _, e := range rec.Judges {
			total += scoring.Total(e)
		}
		id := k
		if id == "" {
			id = UnknownTeam
		}
		standings = append(standings, types.Standing{
			TeamID:     id,
			TeamName:   id,
			Total:      total,
			JudgeCount: len(rec.Judges),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})
	return standings
}
