// internal/app/features/applications/handler.go
package applications

import (
	"go.uber.org/zap"

	applicationstore "github.com/univworks/oppquest/internal/app/store/applications"
	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
)

// Handler owns the application workflow: students submit and track,
// professors review and decide.
type Handler struct {
	Apps *applicationstore.Store
	Opps *oppstore.Store
	Log  *zap.Logger
}

// NewHandler constructs an applications Handler.
func NewHandler(store kv.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Apps: applicationstore.New(store),
		Opps: oppstore.New(store),
		Log:  logger,
	}
}
