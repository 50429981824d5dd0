// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/auth"
	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/pkg/metrics"
)

var validate = validator.New()

// sessionRequest exchanges an identity asserted by the fronting sign-in
// layer for a judge session cookie.
type sessionRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=120"`
}

type sessionResponse struct {
	Status string     `json:"status"`
	Judge  auth.Judge `json:"judge"`
}

// SessionHandler issues judge session cookies.
type SessionHandler struct {
	cfg Config
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(cfg Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// HandlePostSession handles POST /session requests.
func (h *SessionHandler) HandlePostSession(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_session"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		metrics.RecordValidationFailure("session")
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	token, err := auth.IssueSession(h.cfg.SessionSecret, req.Email, req.Name, h.cfg.SessionTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, sessionResponse{
		Status: "ok",
		Judge:  auth.Judge{ID: req.Email, Name: req.Name},
	})
}
