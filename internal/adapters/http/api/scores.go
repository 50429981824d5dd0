// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/app"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/auth"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/adapters/roster"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/domain/model"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

// scoreRequest mirrors the write contract: a team identifier (id or name)
// plus one judge's six sub-scores.
type scoreRequest struct {
	TeamID   string            `json:"teamId"`
	TeamName string            `json:"teamName"`
	Scores   *model.ScoreEntry `json:"scores"`
}

func (s scoreRequest) validate() error {
	switch {
	case strings.TrimSpace(s.TeamID) == "" && strings.TrimSpace(s.TeamName) == "":
		return errors.New("missing teamId or teamName")
	case s.Scores == nil:
		return errors.New("missing scores payload")
	}
	return nil
}

// team resolves the identifier the store keys on: the explicit id wins,
// otherwise the name is slugged.
func (s scoreRequest) team() string {
	if id := strings.TrimSpace(s.TeamID); id != "" {
		return id
	}
	return roster.Slug(s.TeamName)
}

// ScoresHandler handles judge-facing score reads and writes.
type ScoresHandler struct {
	deps Dependencies
	cfg  Config
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps Dependencies, cfg Config) *ScoresHandler {
	return &ScoresHandler{deps: deps, cfg: cfg}
}

// HandleScores dispatches GET and POST /scores.
func (h *ScoresHandler) HandleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleGet returns the score book. A valid admin key widens the read to
// every judge's entries; otherwise the session scopes it to the caller.
func (h *ScoresHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scores"

	if key := adminKeyFromRequest(r); key != "" {
		if err := auth.ValidateAdminKey(key, h.cfg.AdminKey); err != nil {
			metrics.RecordAuthFailure("admin_key")
			writeError(w, http.StatusUnauthorized, "unauthorized", WrapKind(op, ErrUnauthorized, err))
			return
		}
		book, err := h.deps.Scores(r.Context(), auth.Judge{}, true)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, book)
		return
	}

	judge, err := judgeFromRequest(r, h.cfg.SessionSecret)
	if err != nil {
		metrics.RecordAuthFailure("session")
		writeError(w, http.StatusUnauthorized, "unauthorized", WrapKind(op, ErrUnauthorized, err))
		return
	}
	book, err := h.deps.Scores(r.Context(), judge, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// handlePost upserts the caller's entry for one team. Authorization then
// validation, both before any store access.
func (h *ScoresHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_scores"

	judge, err := judgeFromRequest(r, h.cfg.SessionSecret)
	if err != nil {
		metrics.RecordAuthFailure("session")
		writeError(w, http.StatusUnauthorized, "unauthorized", WrapKind(op, ErrUnauthorized, err))
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		metrics.RecordValidationFailure("scores")
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	book, err := h.deps.SubmitScore(r.Context(), judge, req.team(), *req.Scores)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "unauthorized", WrapKind(op, ErrUnauthorized, err))
		case errors.Is(err, app.ErrValidation):
			metrics.RecordValidationFailure("scores")
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, book)
}
