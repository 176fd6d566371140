// internal/app/features/catalog/routes.go
package catalog

import (
	"github.com/go-chi/chi/v5"

	"github.com/univworks/oppquest/internal/app/system/auth"
	"github.com/univworks/oppquest/internal/app/system/roles"
)

// MountRoutes mounts the catalog routes. Browsing requires a session;
// publishing and deleting are professor-only.
func (h *Handler) MountRoutes(r chi.Router, sessions *auth.SessionManager) {
	r.With(sessions.RequireSignedIn).Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireRole(roles.Professor))
		r.Post("/", h.Publish)
		r.Get("/mine", h.Mine)
		r.Delete("/{id}", h.Delete)
	})
}
