// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level, environment); AppConfig is everything specific to this app. The
// struct is passed to most lifecycle hooks, so anything needed during
// startup, request handling, or shutdown lives here.
type AppConfig struct {
	// Storage backend selection
	StorageDriver string // "sqlite" (default), "mongo", or "memory"
	SQLitePath    string // SQLite database file path
	MongoURI      string // MongoDB connection string (only used by the mongo driver)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Demo behavior
	DemoMode bool // auto-provision logins and seed demo data on first run

	// Default admin account, created at startup if absent
	AdminEmail    string
	AdminPassword string
	AdminName     string
}
