package handler

import (
	"encoding/json"
	"net/http"

	"github.com/portfolio-api/internal/application/auth"
	"github.com/portfolio-api/internal/application/session"
	"github.com/portfolio-api/internal/pkg/validate"
)

// AuthHandler handles the PIN login endpoints.
type AuthHandler struct {
	authSvc    auth.Service
	sessionSvc session.Service
}

func NewAuthHandler(authSvc auth.Service, sessionSvc session.Service) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, sessionSvc: sessionSvc}
}

type requestPinRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestPin issues a one-time PIN. The response body is the same whether or
// not the email can actually log in.
func (h *AuthHandler) RequestPin(w http.ResponseWriter, r *http.Request) {
	var req requestPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "a valid email is required")
		return
	}
	result, err := h.authSvc.RequestPin(r.Context(), req.Email)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: result.Message})
}

// VerifyPin exchanges a valid PIN for a session and tokens.
func (h *AuthHandler) VerifyPin(w http.ResponseWriter, r *http.Request) {
	var req session.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "email and pin are required")
		return
	}
	result, err := h.sessionSvc.Login(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Session:      result.Session,
	})
}
