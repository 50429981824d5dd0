// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/repository"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/roster"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/auth"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/ranking"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/scoring"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/types"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/logger"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

// Service implements the judging operations behind the HTTP API: scoped
// score reads, authenticated upserts, and the admin ranking.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	roster  roster.Source
	backend string
	now     func() time.Time

	started     bool
	submissions atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the score store and the backend label used on metrics.
func WithStore(store repository.Store, backend string) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
			s.backend = backend
		}
	}
}

// WithRoster sets the team roster source.
func WithRoster(source roster.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.roster = source
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithClock overrides the timestamp source. Tests use this to pin
// updatedAt values.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		backend: "file",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes defaults and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewFileStore("scores.json")
		s.backend = "file"
	}
	if s.roster == nil {
		s.roster = roster.NewFallback(nil, s.logger)
	}

	s.started = true
	s.logger.Info(ctx, "judging service started", logger.String("backend", s.backend))
	return nil
}

// Stop releases the store if it holds external resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "judging service stopped")
}

// Scores returns the merged score book. Admin callers see everything;
// a judge sees only their own entry per team, so in-progress scores stay
// private until aggregation. Both access levels run through this one path.
func (s *Service) Scores(ctx context.Context, judge auth.Judge, admin bool) (model.ScoreBook, error) {
	if !admin && judge.ID == "" {
		return nil, ErrUnauthorized
	}

	book, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if admin {
		return book, nil
	}

	scoped := model.ScoreBook{}
	for teamID, rec := range book {
		for _, e := range rec.Judges {
			if e.UpdatedBy == judge.ID {
				scoped[teamID] = model.TeamScoreRecord{
					ScoreEntry: e,
					Judges:     []model.ScoreEntry{e},
				}
				break
			}
		}
	}
	return scoped, nil
}

// SubmitScore upserts one judge's entry for one team and returns the
// caller's post-write view. Authorization and validation reject before any
// mutation; sub-scores are clamped and the timestamp and judge identity
// are stamped server-side.
func (s *Service) SubmitScore(ctx context.Context, judge auth.Judge, teamID string, entry model.ScoreEntry) (model.ScoreBook, error) {
	if judge.ID == "" {
		return nil, ErrUnauthorized
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, ErrValidation
	}

	entry = scoring.Sanitize(entry)
	entry.UpdatedBy = judge.ID
	entry.UpdatedByName = judge.Name
	entry.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if _, err := s.store.Upsert(ctx, teamID, entry); err != nil {
		return nil, err
	}
	s.submissions.Add(1)
	metrics.RecordScoreSubmitted(s.backend)
	s.logger.Info(ctx, "score saved",
		logger.String("team", teamID),
		logger.String("judge", judge.ID),
		logger.Int("total", scoring.Total(entry)),
	)

	return s.Scores(ctx, judge, false)
}

// Ranking reduces the full book to ordered standings and fills in roster
// display names where team ids match.
func (s *Service) Ranking(ctx context.Context) ([]types.Standing, error) {
	book, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	standings := ranking.Rank(book)
	metrics.RecordRankingRequest()
	s.updateGauges(book)

	// Roster lookup is best effort; standings stay keyed by what judges
	// actually submitted.
	teams, err := s.roster.Teams(ctx)
	if err != nil {
		return standings, nil
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	for i := range standings {
		if name, ok := names[standings[i].TeamID]; ok {
			standings[i].TeamName = name
		}
	}
	return standings, nil
}

// Teams returns the current roster.
func (s *Service) Teams(ctx context.Context) ([]model.Team, error) {
	return s.roster.Teams(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	backend := s.backend
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     started,
		"backend":     backend,
		"submissions": s.submissions.Load(),
	}
	if !started {
		return stats
	}

	if book, err := s.store.GetAll(context.Background()); err == nil {
		stats["teamsScored"] = len(book)
		stats["judgesSeen"] = countJudges(book)
		s.updateGauges(book)
	}
	return stats
}

func (s *Service) updateGauges(book model.ScoreBook) {
	metrics.UpdateTeamsScored(len(book))
	metrics.UpdateJudgesSeen(countJudges(book))
}

func countJudges(book model.ScoreBook) int {
	judges := map[string]bool{}
	for _, rec := range book {
		for _, e := range rec.Judges {
			judges[e.UpdatedBy] = true
		}
	}
	return len(judges)
}
