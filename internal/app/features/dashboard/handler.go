// internal/app/features/dashboard/handler.go
package dashboard

import (
	"go.uber.org/zap"

	applicationstore "github.com/univworks/oppquest/internal/app/store/applications"
	bookmarkstore "github.com/univworks/oppquest/internal/app/store/bookmarks"
	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
	userstore "github.com/univworks/oppquest/internal/app/store/users"
)

// Handler serves the per-role dashboard summaries. Each summary pulls from
// several stores so the client renders its landing view from one call.
type Handler struct {
	Users     *userstore.Store
	Opps      *oppstore.Store
	Bookmarks *bookmarkstore.Store
	Apps      *applicationstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(store kv.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(store),
		Opps:      oppstore.New(store),
		Bookmarks: bookmarkstore.New(store),
		Apps:      applicationstore.New(store),
		Log:       logger,
	}
}
