// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/univworks/oppquest/internal/app/store/kv"
)

// DBDeps holds backend dependencies for the app.
//
// KV is the collection store every feature reads and writes through.
// MongoClient is only set when the mongo driver is selected; it lives
// here so Shutdown can disconnect it.
type DBDeps struct {
	KV          kv.Store
	MongoClient *mongo.Client
}
