package handler

import (
	"net/http"

	"github.com/collab-notes-api/internal/domain"
)

// ListRoles returns the fixed set of roles. Roles are constants, not stored
// records, so there is no CRUD surface.
func ListRoles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []string{domain.RoleAdmin, domain.RoleUser})
}
