package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portfolio-api/internal/application/setting"
	"github.com/portfolio-api/internal/domain"
)

// SettingHandler handles public and admin site-settings endpoints.
type SettingHandler struct {
	svc setting.Service
}

func NewSettingHandler(svc setting.Service) *SettingHandler { return &SettingHandler{svc: svc} }

func (h *SettingHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	public, err := h.svc.ListPublic(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, public)
}

func (h *SettingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.ListAll(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *SettingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	st, err := h.svc.Upsert(r.Context(), chi.URLParam(r, "key"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *SettingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "setting deleted"})
}
