package roster

import (
	"context"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/logger"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

// Fallback wraps a Source and serves the built-in sample roster when the
// primary source fails. This is the one place a failure is deliberately
// swallowed: judging must stay usable while the spreadsheet is broken.
type Fallback struct {
	primary Source
	log     logger.Logger
}

// NewFallback wraps primary. A nil primary always serves the sample.
func NewFallback(primary Source, log logger.Logger) *Fallback {
	return &Fallback{primary: primary, log: log}
}

// Teams returns the primary roster, or the sample roster on any failure.
func (f *Fallback) Teams(ctx context.Context) ([]model.Team, error) {
	if f.primary != nil {
		teams, err := f.primary.Teams(ctx)
		if err == nil {
			return teams, nil
		}
		if f.log != nil {
			f.log.Warn(ctx, "roster source failed, serving sample teams", logger.Error(err))
		}
	}
	metrics.RecordRosterFallback()
	return SampleTeams(), nil
}

// SampleTeams returns a fresh copy of the built-in demo roster.
func SampleTeams() []model.Team {
	return []model.Team{
		{ID: "nebula-nine", Name: "Nebula Nine", Members: []string{"Asha", "Rohit", "Priya"}, Track: "Fintech"},
		{ID: "cache-money", Name: "Cache Money", Members: []string{"Dev", "Sneha"}, Track: "Developer Tools"},
		{ID: "green-loop", Name: "Green Loop", Members: []string{"Kabir", "Meera", "Tanvi"}, Track: "Sustainability"},
		{ID: "pixel-pulse", Name: "Pixel Pulse", Members: []string{"Arjun", "Nisha"}, Track: "Healthcare"},
		{ID: "query-quest", Name: "Query Quest", Members: []string{"Sam", "Lena", "Ravi"}, Track: "Education"},
	}
}
