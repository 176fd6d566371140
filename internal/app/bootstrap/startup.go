// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the store is
// connected but before the HTTP handler is built. It guarantees the admin
// account exists and, in demo mode, seeds sample data into an empty store.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := ensureAdmin(ctx, deps.KV, appCfg, logger); err != nil {
		return err
	}
	if appCfg.DemoMode {
		if err := seedDemoData(ctx, deps.KV, logger); err != nil {
			return err
		}
	}
	return nil
}
