// internal/app/features/applications/routes.go
package applications

import (
	"github.com/go-chi/chi/v5"

	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/roles"
)

// MountRoutes mounts the application routes. Submitting and tracking are
// student-only; reviewing and deciding are professor-only.
func (h *Handler) MountRoutes(r chi.Router, sessions *auth.SessionManager) {
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireRole(roles.Student))
		r.Post("/", h.Submit)
		r.Get("/mine", h.Mine)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireRole(roles.Professor))
		r.Get("/received", h.Received)
		r.Post("/{id}/status", h.Decide)
	})
}
