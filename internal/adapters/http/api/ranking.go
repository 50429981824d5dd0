// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/auth"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

// RankingHandler serves the admin-gated standings view.
type RankingHandler struct {
	deps Dependencies
	cfg  Config
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(deps Dependencies, cfg Config) *RankingHandler {
	return &RankingHandler{deps: deps, cfg: cfg}
}

// HandleGetRanking handles GET /ranking?key=ADMIN[&limit=N] requests.
func (h *RankingHandler) HandleGetRanking(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_ranking"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	if err := auth.ValidateAdminKey(adminKeyFromRequest(r), h.cfg.AdminKey); err != nil {
		metrics.RecordAuthFailure("admin_key")
		writeError(w, http.StatusUnauthorized, "unauthorized", WrapKind(op, ErrUnauthorized, err))
		return
	}

	standings, err := h.deps.Ranking(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n < len(standings) {
			standings = standings[:n]
		}
	}
	writeJSON(w, http.StatusOK, standings)
}
