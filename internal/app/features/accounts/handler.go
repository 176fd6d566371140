// internal/app/features/accounts/handler.go
package accounts

import (
	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/store/kv"
	userstore "github.com/univworks/oppquest/internal/app/store/users"
	"github.com/univworks/oppquest/internal/app/system/auth"
)

// Handler owns registration, login, logout, and whoami.
type Handler struct {
	Users    *userstore.Store
	Sessions *auth.SessionManager
	Log      *zap.Logger

	// DemoMode provisions unknown accounts at login instead of rejecting
	// them, so a fresh install is usable without a registration step.
	DemoMode bool
}

// NewHandler constructs an accounts Handler.
func NewHandler(store kv.Store, sessions *auth.SessionManager, demoMode bool, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(store),
		Sessions: sessions,
		Log:      logger,
		DemoMode: demoMode,
	}
}
