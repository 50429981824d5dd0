// Package scoring holds the pure score-shaping rules: clamping, totals,
// and the per-team merge of judge entries.
package scoring

import "github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"

// Sub-score bounds. Six categories, each in [MinSubScore, MaxSubScore],
// so a single judge's total lands in [0, 90].
const (
	MinSubScore = 0
	MaxSubScore = 15
)

// Clamp forces a sub-score into [MinSubScore, MaxSubScore].
func Clamp(v int) int {
	if v < MinSubScore {
		return MinSubScore
	}
	if v > MaxSubScore {
		return MaxSubScore
	}
	return v
}

// Sanitize returns a copy of e with every sub-score clamped. Always applied
// before persistence.
func Sanitize(e model.ScoreEntry) model.ScoreEntry {
	e.ProblemRelevance = Clamp(e.ProblemRelevance)
	e.TechnicalFeasibility = Clamp(e.TechnicalFeasibility)
	e.StatementAlignment = Clamp(e.StatementAlignment)
	e.Creativity = Clamp(e.Creativity)
	e.Presentation = Clamp(e.Presentation)
	e.PlatformUse = Clamp(e.PlatformUse)
	return e
}

// Total sums the six sub-scores of an entry after clamping.
func Total(e model.ScoreEntry) int {
	e = Sanitize(e)
	return e.ProblemRelevance +
		e.TechnicalFeasibility +
		e.StatementAlignment +
		e.Creativity +
		e.Presentation +
		e.PlatformUse
}

// Merge upserts e into rec's judge list, keyed by UpdatedBy: an existing
// entry for the same judge is replaced in place, a new judge is appended.
// The record head always mirrors the incoming (latest) entry. The input
// record is not mutated.
func Merge(rec model.TeamScoreRecord, e model.ScoreEntry) model.TeamScoreRecord {
	judges := make([]model.ScoreEntry, len(rec.Judges))
	copy(judges, rec.Judges)

	replaced := false
	for i := range judges {
		if judges[i].UpdatedBy == e.UpdatedBy {
			judges[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		judges = append(judges, e)
	}

	return model.TeamScoreRecord{
		ScoreEntry: e,
		Judges:     judges,
	}
}
