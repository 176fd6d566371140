// internal/app/features/admin/handler.go
package admin

import (
	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	userstore "github.com/univworks/oppquest/internal/app/store/users"
)

// Handler owns the admin surface: the pending professor queue and the
// platform stats.
type Handler struct {
	Users *userstore.Store
	Opps  *oppstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an admin Handler.
func NewHandler(store kv.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(store),
		Opps:  oppstore.New(store),
		Log:   logger,
	}
}
