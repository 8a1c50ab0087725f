package handler

import (
	"encoding/json"
	"net/http"

	"github.com/collab-notes-api/internal/application/candidate"
	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// CandidateHandler handles candidate CRUD endpoints.
type CandidateHandler struct {
	svc candidate.Service
}

func NewCandidateHandler(svc candidate.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "candidate deleted"})
}
