// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/univworks/oppquest/internal/app/store/kv"
	"github.com/univworks/oppquest/internal/app/system/timeouts"
)

// ConnectDB opens the configured storage backend.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	switch appCfg.StorageDriver {
	case "sqlite":
		store, err := kv.OpenSQLite(ctx, appCfg.SQLitePath, logger)
		if err != nil {
			return DBDeps{}, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("sqlite store opened", zap.String("path", appCfg.SQLitePath))
		return DBDeps{KV: store}, nil

	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
		}
		logger.Info("mongo store connected", zap.String("database", appCfg.MongoDatabase))
		return DBDeps{
			KV:          kv.NewMongo(client.Database(appCfg.MongoDatabase), logger),
			MongoClient: client,
		}, nil

	case "memory":
		logger.Warn("memory store selected; data will not survive a restart")
		return DBDeps{KV: kv.NewMemory()}, nil

	default:
		// ValidateConfig rejects unknown drivers before we get here.
		return DBDeps{}, fmt.Errorf("unknown storage_driver %q", appCfg.StorageDriver)
	}
}

// EnsureSchema sets up backend schema as needed. Only the SQLite store
// has schema to create; the statement is idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if s, ok := deps.KV.(*kv.SQLite); ok {
		return s.EnsureSchema(ctx)
	}
	return nil
}
