// internal/app/features/bookmarks/handler.go
package bookmarks

import (
	"go.uber.org/zap"

	bookmarkstore "github.com/univworks/oppquest/internal/app/store/bookmarks"
	"github.com/univworks/oppquest/internal/app/store/kv"
	oppstore "github.com/univworks/oppquest/internal/app/store/opportunities"
)

// Handler owns the student bookmark ledger.
type Handler struct {
	Bookmarks *bookmarkstore.Store
	Opps      *oppstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a bookmarks Handler. The catalog store is needed
// to snapshot an opportunity's title and deadline at toggle time.
func NewHandler(store kv.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Bookmarks: bookmarkstore.New(store),
		Opps:      oppstore.New(store),
		Log:       logger,
	}
}
