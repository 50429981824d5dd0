// Package auth implements judge session tokens and the admin gate.
//
// Sessions are HMAC-SHA256 signed, self-contained tokens: the upstream
// identity layer (OAuth fronting the dashboard) is trusted to hand us a
// judge identity once; after that the cookie alone authenticates saves.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SessionCookie is the cookie name the API reads the token from.
const SessionCookie = "judge_session"

// Judge is the authenticated identity attached to a request.
type Judge struct {
	// ID is the opaque judge key, typically an email.
	ID string `json:"id"`
	// Name is the optional display name.
	Name string `json:"name,omitempty"`
}

type sessionClaims struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Exp  int64  `json:"exp"`
}

// IssueSession mints a signed token for a judge, valid for ttl.
func IssueSession(secret, judgeID, judgeName string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if judgeID == "" {
		return "", ErrEmptyJudgeID
	}

	claims := sessionClaims{
		ID:   judgeID,
		Name: judgeName,
		Exp:  time.Now().Add(ttl).Unix(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("encode session claims: %w", err)
	}

	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + sign(secret, body), nil
}

// VerifySession validates a token's signature and expiry and returns the
// judge it was issued for.
func VerifySession(secret, token string) (Judge, error) {
	body, mac, ok := strings.Cut(token, ".")
	if !ok || body == "" || mac == "" {
		return Judge{}, ErrInvalidSession
	}
	if !hmac.Equal([]byte(mac), []byte(sign(secret, body))) {
		return Judge{}, ErrInvalidSession
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return Judge{}, ErrInvalidSession
	}
	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil || claims.ID == "" {
		return Judge{}, ErrInvalidSession
	}
	if time.Now().Unix() >= claims.Exp {
		return Judge{}, ErrSessionExpired
	}

	return Judge{ID: claims.ID, Name: claims.Name}, nil
}

// ValidateAdminKey compares a presented key against the configured one in
// constant time. An empty configured key disables the admin view entirely.
func ValidateAdminKey(got, want string) error {
	if want == "" || !hmac.Equal([]byte(got), []byte(want)) {
		return ErrInvalidAdminKey
	}
	return nil
}

func sign(secret, body string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
