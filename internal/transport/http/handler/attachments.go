package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/collab-notes-api/internal/application/attachment"
	"github.com/collab-notes-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// 25 MiB cap on multipart uploads.
const maxUploadSize = 25 << 20

// AttachmentHandler handles candidate document endpoints.
type AttachmentHandler struct {
	svc attachment.Service
}

func NewAttachmentHandler(svc attachment.Service) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field required")
		return
	}
	defer file.Close()

	a, err := h.svc.Upload(r.Context(), attachment.UploadInput{
		CandidateID: chi.URLParam(r, "id"),
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		UploaderID:  claims.UserID,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AttachmentHandler) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListByCandidate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, as)
}

func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	rc, a, err := h.svc.Download(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", a.Type)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "attachment deleted"})
}
