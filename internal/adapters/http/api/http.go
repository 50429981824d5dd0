// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/auth"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Scores exposes the merged book; admin widens from judge-scoped.
	Scores(ctx context.Context, judge auth.Judge, admin bool) (model.ScoreBook, error)

	// SubmitScore upserts one judge's entry and returns the caller's view.
	SubmitScore(ctx context.Context, judge auth.Judge, teamID string, entry model.ScoreEntry) (model.ScoreBook, error)

	// Ranking returns standings ordered by total descending.
	Ranking(ctx context.Context) ([]types.Standing, error)

	// Teams returns the current roster.
	Teams(ctx context.Context) ([]model.Team, error)
}

// Config carries the secrets the handler layer needs.
type Config struct {
	SessionSecret string
	AdminKey      string
	SessionTTL    time.Duration
}

// Server wires HTTP routes for the business API.
type Server struct {
	cfg Config

	sessionHandler *SessionHandler
	scoresHandler  *ScoresHandler
	rankingHandler *RankingHandler
	teamsHandler   *TeamsHandler
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, cfg Config) *Server {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &Server{
		cfg:            cfg,
		sessionHandler: NewSessionHandler(cfg),
		scoresHandler:  NewScoresHandler(deps, cfg),
		rankingHandler: NewRankingHandler(deps, cfg),
		teamsHandler:   NewTeamsHandler(deps),
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/session", MetricsMiddleware(s.sessionHandler.HandlePostSession, "session"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/scores", MetricsMiddleware(s.scoresHandler.HandleScores, "scores"))
	mux.HandleFunc("/ranking", MetricsMiddleware(s.rankingHandler.HandleGetRanking, "ranking"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// judgeFromRequest resolves the session cookie into a judge identity.
func judgeFromRequest(r *http.Request, secret string) (auth.Judge, error) {
	c, err := r.Cookie(auth.SessionCookie)
	if err != nil {
		return auth.Judge{}, auth.ErrInvalidSession
	}
	return auth.VerifySession(secret, c.Value)
}

// adminKeyFromRequest reads the admin key from the header or query string.
func adminKeyFromRequest(r *http.Request) string {
	if key := r.Header.Get("X-Admin-Key"); key != "" {
		return key
	}
	return r.URL.Query().Get("key")
}
