package handler

import (
	"encoding/json"
	"net/http"

	"github.com/collab-notes-api/internal/application/note"
	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/pkg/validate"
	"github.com/collab-notes-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// NoteHandler handles note endpoints nested under a candidate.
type NoteHandler struct {
	svc note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler { return &NoteHandler{svc: svc} }

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.Create(r.Context(), chi.URLParam(r, "id"), claims.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *NoteHandler) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListByCandidate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}
