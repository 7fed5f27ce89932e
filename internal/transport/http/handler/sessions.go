package handler

import (
	"encoding/json"
	"net/http"

	"github.com/portfolio-api/internal/application/session"
	"github.com/portfolio-api/internal/transport/http/middleware"
)

// SessionHandler handles session lifecycle endpoints.
type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh_token required")
		return
	}
	result, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

func (h *SessionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sess, err := h.svc.GetCurrent(r.Context(), claims.SessionID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionEnvelope{Session: sess})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.Logout(r.Context(), claims.SessionID); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "logged out"})
}
