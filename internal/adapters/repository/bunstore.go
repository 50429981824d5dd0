package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/scoring"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

// scoreRow is one (team, judge) pair in the team_scores table. The unique
// index on (team_id, judge_id) makes the row upsert the concurrency-safe
// path of the two backends.
type scoreRow struct {
	bun.BaseModel `bun:"table:team_scores,alias:ts"`

	ID        int64  `bun:"id,pk,autoincrement"`
	TeamID    string `bun:"team_id,notnull"`
	JudgeID   string `bun:"judge_id,notnull"`
	JudgeName string `bun:"judge_name"`

	ProblemRelevance     int `bun:"problem_relevance,notnull,default:0"`
	TechnicalFeasibility int `bun:"technical_feasibility,notnull,default:0"`
	StatementAlignment   int `bun:"statement_alignment,notnull,default:0"`
	Creativity           int `bun:"creativity,notnull,default:0"`
	Presentation         int `bun:"presentation,notnull,default:0"`
	PlatformUse          int `bun:"platform_use,notnull,default:0"`

	Notes     string    `bun:"notes"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// BunStore persists scores in Postgres via bun, one row per (team, judge).
type BunStore struct {
	db *bun.DB
}

// OpenPostgres dials Postgres through the bun pgdriver and verifies the
// connection before handing back a bun.DB.
func OpenPostgres(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w: %w", ErrStorage, err)
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// NewBunStore wraps an existing bun.DB.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

// Migrate creates the team_scores table and its uniqueness constraint if
// they do not exist yet.
func (s *BunStore) Migrate(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*scoreRow)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create team_scores: %w: %w", ErrStorage, err)
	}

	if _, err := s.db.NewCreateIndex().
		Model((*scoreRow)(nil)).
		Index("team_scores_team_judge_key").
		Unique().
		IfNotExists().
		Column("team_id", "judge_id").
		Exec(ctx); err != nil {
		return fmt.Errorf("create team_scores unique index: %w: %w", ErrStorage, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *BunStore) Close() error {
	return s.db.Close()
}

// GetAll loads every row in arrival order (first insert keeps its id on
// conflict updates) and merges them into one record per team.
func (s *BunStore) GetAll(ctx context.Context) (model.ScoreBook, error) {
	var rows []scoreRow
	start := time.Now()
	err := s.db.NewSelect().
		Model(&rows).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		metrics.RecordStorageError("postgres")
		return nil, fmt.Errorf("select team_scores: %w: %w", ErrStorage, err)
	}
	metrics.RecordStoreReadLatency("postgres", float64(time.Since(start).Milliseconds()))

	book := model.ScoreBook{}
	latest := map[string]time.Time{}
	for _, row := range rows {
		entry := row.entry()
		rec := book[row.TeamID]
		rec.Judges = append(rec.Judges, entry)
		// Head mirrors the most recently updated entry, not the last row.
		if row.UpdatedAt.After(latest[row.TeamID]) || rec.UpdatedBy == "" {
			rec.ScoreEntry = entry
			latest[row.TeamID] = row.UpdatedAt
		}
		book[row.TeamID] = rec
	}
	return book, nil
}

// Upsert writes the (team, judge) row in a single statement; the unique
// index turns a resubmission into an update of the existing row.
func (s *BunStore) Upsert(ctx context.Context, teamID string, entry model.ScoreEntry) (model.TeamScoreRecord, error) {
	if teamID == "" {
		return model.TeamScoreRecord{}, ErrEmptyTeamID
	}
	if entry.UpdatedBy == "" {
		return model.TeamScoreRecord{}, ErrEmptyJudgeID
	}

	entry = scoring.Sanitize(entry)
	row := rowFromEntry(teamID, entry)

	start := time.Now()
	_, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (team_id, judge_id) DO UPDATE").
		Set("judge_name = EXCLUDED.judge_name").
		Set("problem_relevance = EXCLUDED.problem_relevance").
		Set("technical_feasibility = EXCLUDED.technical_feasibility").
		Set("statement_alignment = EXCLUDED.statement_alignment").
		Set("creativity = EXCLUDED.creativity").
		Set("presentation = EXCLUDED.presentation").
		Set("platform_use = EXCLUDED.platform_use").
		Set("notes = EXCLUDED.notes").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		metrics.RecordStorageError("postgres")
		return model.TeamScoreRecord{}, fmt.Errorf("upsert team %s judge %s: %w: %w", teamID, entry.UpdatedBy, ErrStorage, err)
	}
	metrics.RecordStoreWriteLatency("postgres", float64(time.Since(start).Milliseconds()))

	return s.teamRecord(ctx, teamID)
}

// teamRecord rebuilds the merged view for one team after a write.
func (s *BunStore) teamRecord(ctx context.Context, teamID string) (model.TeamScoreRecord, error) {
	var rows []scoreRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		metrics.RecordStorageError("postgres")
		return model.TeamScoreRecord{}, fmt.Errorf("select team %s: %w: %w", teamID, ErrStorage, err)
	}

	var rec model.TeamScoreRecord
	var latest time.Time
	for _, row := range rows {
		entry := row.entry()
		rec.Judges = append(rec.Judges, entry)
		if row.UpdatedAt.After(latest) || rec.UpdatedBy == "" {
			rec.ScoreEntry = entry
			latest = row.UpdatedAt
		}
	}
	return rec, nil
}

func (r scoreRow) entry() model.ScoreEntry {
	e := model.ScoreEntry{
		ProblemRelevance:     r.ProblemRelevance,
		TechnicalFeasibility: r.TechnicalFeasibility,
		StatementAlignment:   r.StatementAlignment,
		Creativity:           r.Creativity,
		Presentation:         r.Presentation,
		PlatformUse:          r.PlatformUse,
		Notes:                r.Notes,
		UpdatedBy:            r.JudgeID,
		UpdatedByName:        r.JudgeName,
	}
	if !r.UpdatedAt.IsZero() {
		e.UpdatedAt = r.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return e
}

func rowFromEntry(teamID string, e model.ScoreEntry) scoreRow {
	updatedAt := time.Now().UTC()
	if e.UpdatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, e.UpdatedAt); err == nil {
			updatedAt = ts.UTC()
		}
	}
	return scoreRow{
		TeamID:               teamID,
		JudgeID:              e.UpdatedBy,
		JudgeName:            e.UpdatedByName,
		ProblemRelevance:     e.ProblemRelevance,
		TechnicalFeasibility: e.TechnicalFeasibility,
		StatementAlignment:   e.StatementAlignment,
		Creativity:           e.Creativity,
		Presentation:         e.Presentation,
		PlatformUse:          e.PlatformUse,
		Notes:                e.Notes,
		UpdatedAt:            updatedAt,
	}
}
