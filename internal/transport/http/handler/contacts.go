package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio-api/internal/application/contact"
	"github.com/portfolio-api/internal/domain"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler { return &ContactHandler{svc: svc} }

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := h.svc.Submit(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, MessageEnvelope{Message: "message received, thank you"})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "message marked as read"})
}

// Delete is a hard delete; contact messages hold personal data and are not kept.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "message deleted"})
}
