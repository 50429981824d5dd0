// Package model contains domain models passed between layers.
package model

// ScoreEntry is one judge's evaluation of one team. The six sub-scores are
// each kept in [0,15]; the JSON tags define both the wire contract and the
// file-backend layout.
type ScoreEntry struct {
	ProblemRelevance     int `json:"problemRelevance"`
	TechnicalFeasibility int `json:"technicalFeasibility"`
	StatementAlignment   int `json:"statementAlignment"`
	Creativity           int `json:"creativity"`
	Presentation         int `json:"presentation"`
	PlatformUse          int `json:"platformUse"`

	Notes string `json:"notes,omitempty"`

	// UpdatedAt is the RFC3339 timestamp of the last save.
	UpdatedAt string `json:"updatedAt,omitempty"`
	// UpdatedBy is the judge's opaque identity key, typically an email.
	UpdatedBy     string `json:"updatedBy,omitempty"`
	UpdatedByName string `json:"updatedByName,omitempty"`
}

// TeamScoreRecord is the merged view for one team: the most recent entry
// inline, plus every judge's entry in order of first arrival. Each judge
// appears at most once; a resubmission replaces that judge's prior entry.
type TeamScoreRecord struct {
	ScoreEntry

	Judges []ScoreEntry `json:"judges,omitempty"`
}

// ScoreBook maps a team identifier to its merged record. This is the shape
// the store persists and the read endpoint returns.
type ScoreBook map[string]TeamScoreRecord

// Team is one roster row as imported from the spreadsheet export.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members,omitempty"`
	Track   string   `json:"track,omitempty"`
}
