// internal/app/features/catalog/handler.go
package catalog

import (
	"go.uber.org/zap"

	applicationstore "github.com/univworks/oppquest/internal/app/store/applications"
	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
)

// Handler owns the opportunity catalog: browsing for students, publishing
// and managing for professors.
type Handler struct {
	Opps *oppstore.Store
	Apps *applicationstore.Store
	Log  *zap.Logger
}

// NewHandler constructs a catalog Handler. The application store is needed
// so that deleting an opportunity cascades to its applications.
func NewHandler(store kv.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Opps: oppstore.New(store),
		Apps: applicationstore.New(store),
		Log:  logger,
	}
}
