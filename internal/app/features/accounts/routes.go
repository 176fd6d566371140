// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the account routes on the given router.
// These are the only unauthenticated write endpoints in the app.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/whoami", h.WhoAmI)
}
