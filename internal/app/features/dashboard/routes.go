// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/roles"
)

// MountRoutes mounts one summary endpoint per role.
func (h *Handler) MountRoutes(r chi.Router, sessions *auth.SessionManager) {
	r.With(sessions.RequireRole(roles.Student)).Get("/student", h.Student)
	r.With(sessions.RequireRole(roles.Professor)).Get("/professor", h.Professor)
	r.With(sessions.RequireRole(roles.Admin)).Get("/admin", h.Admin)
}
