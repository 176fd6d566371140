// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/roles"
)

// MountRoutes mounts the admin routes. All of them require the admin role.
func (h *Handler) MountRoutes(r chi.Router, sessions *auth.SessionManager) {
	r.Use(sessions.RequireRole(roles.Admin))
	r.Get("/pending-professors", h.PendingProfessors)
	r.Post("/pending-professors/{id}/approve", h.Approve)
	r.Post("/pending-professors/{id}/reject", h.Reject)
	r.Get("/stats", h.Stats)
}
