// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the health endpoint. It is unauthenticated so load
// balancers and uptime monitors can reach it.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Serve)
}
