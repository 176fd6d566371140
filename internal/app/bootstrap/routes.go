// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/univworks/oppquest/internal/app/features/accounts"
	adminfeature "github.com/univworks/oppquest/internal/app/features/admin"
	applicationsfeature "github.com/univworks/oppquest/internal/app/features/applications"
	bookmarksfeature "github.com/univworks/oppquest/internal/app/features/bookmarks"
	catalogfeature "github.com/univworks/oppquest/internal/app/features/catalog"
	dashboardfeature "github.com/univworks/oppquest/internal/app/features/dashboard"
	healthfeature "github.com/univworks/oppquest/internal/app/features/health"
	"github.com/univworks/oppquest/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store connection, and Startup
// have completed. Every surface is a JSON endpoint; the view layer is a
// separate client that talks to these routes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.KV, logger)
	r.Route("/health", func(r chi.Router) {
		healthHandler.MountRoutes(r)
	})

	// Registration, login, logout, whoami.
	accountsHandler := accountsfeature.NewHandler(deps.KV, sessionMgr, appCfg.DemoMode, logger)
	r.Route("/auth", func(r chi.Router) {
		accountsHandler.MountRoutes(r)
	})

	// Opportunity catalog: browse, publish, manage.
	catalogHandler := catalogfeature.NewHandler(deps.KV, logger)
	r.Route("/opportunities", func(r chi.Router) {
		catalogHandler.MountRoutes(r, sessionMgr)
	})

	// Student bookmarks.
	bookmarksHandler := bookmarksfeature.NewHandler(deps.KV, logger)
	r.Route("/bookmarks", func(r chi.Router) {
		bookmarksHandler.MountRoutes(r, sessionMgr)
	})

	// Application workflow.
	applicationsHandler := applicationsfeature.NewHandler(deps.KV, logger)
	r.Route("/applications", func(r chi.Router) {
		applicationsHandler.MountRoutes(r, sessionMgr)
	})

	// Admin surface: pending professor queue and stats.
	adminHandler := adminfeature.NewHandler(deps.KV, logger)
	r.Route("/admin", func(r chi.Router) {
		adminHandler.MountRoutes(r, sessionMgr)
	})

	// Role-based dashboard summaries.
	dashboardHandler := dashboardfeature.NewHandler(deps.KV, logger)
	r.Route("/dashboard", func(r chi.Router) {
		dashboardHandler.MountRoutes(r, sessionMgr)
	})

	return r, nil
}
