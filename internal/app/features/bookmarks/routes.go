// internal/app/features/bookmarks/routes.go
package bookmarks

import (
	"github.com/go-chi/chi/v5"

	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/roles"
)

// MountRoutes mounts the bookmark routes. All of them are student-only.
func (h *Handler) MountRoutes(r chi.Router, sessions *auth.SessionManager) {
	r.Use(sessions.RequireRole(roles.Student))
	r.Get("/", h.List)
	r.Post("/{oppID}/toggle", h.Toggle)
}
