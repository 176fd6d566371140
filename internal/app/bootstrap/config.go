// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for OppQuest.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: storage_driver, session_name, etc.
//   - Environment variables: OPPQUEST_STORAGE_DRIVER, OPPQUEST_SESSION_NAME, etc.
//   - Command-line flags: --storage_driver, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "storage_driver", Default: "sqlite", Desc: "Storage backend: 'sqlite', 'mongo', or 'memory'"},
	{Name: "sqlite_path", Default: "./data/oppquest.db", Desc: "SQLite database file path"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo driver only)"},
	{Name: "mongo_database", Default: "oppquest", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "oppquest-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "demo_mode", Default: true, Desc: "Auto-provision logins and seed demo data on first run"},

	{Name: "admin_email", Default: "admin@example.com", Desc: "Default admin account email (created on startup if absent)"},
	{Name: "admin_password", Default: "admin123", Desc: "Default admin account password"},
	{Name: "admin_name", Default: "Administrator", Desc: "Default admin account display name"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, OPPQUEST_* for app), and
// command-line flags, merged with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "OPPQUEST", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StorageDriver: appValues.String("storage_driver"),
		SQLitePath:    appValues.String("sqlite_path"),
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		DemoMode: appValues.Bool("demo_mode"),

		AdminEmail:    appValues.String("admin_email"),
		AdminPassword: appValues.String("admin_password"),
		AdminName:     appValues.String("admin_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// It enforces a known storage driver, and for the mongo driver checks the
// URI format early so a typo fails startup rather than the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StorageDriver {
	case "sqlite", "memory":
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	default:
		return fmt.Errorf("unknown storage_driver %q (want sqlite, mongo, or memory)", appCfg.StorageDriver)
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}
	if appCfg.AdminEmail == "" || appCfg.AdminPassword == "" {
		return fmt.Errorf("admin_email and admin_password must not be empty")
	}
	return nil
}
