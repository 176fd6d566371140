package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Mongo stores each collection as a single document in one MongoDB
// collection. The whole-collection read/write model is unchanged; Mongo
// only replaces the file on disk for installations that already run it.
type Mongo struct {
	c   *mongo.Collection
	log *zap.Logger
}

// collectionDoc is the persisted shape: one document per named collection.
type collectionDoc struct {
	Name string `bson:"_id"`
	Data []byte `bson:"data"`
}

// NewMongo wraps db's "collections" collection as a Store.
func NewMongo(db *mongo.Database, logger *zap.Logger) *Mongo {
	return &Mongo{c: db.Collection("collections"), log: logger}
}

func (m *Mongo) Get(ctx context.Context, collection string, v any) error {
	var doc collectionDoc
	err := m.c.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %q: %w", collection, err)
	}
	if err := json.Unmarshal(doc.Data, v); err != nil {
		m.log.Warn("malformed collection payload, treating as empty",
			zap.String("collection", collection),
			zap.Error(err))
		return nil
	}
	return nil
}

func (m *Mongo) Put(ctx context.Context, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", collection, err)
	}
	_, err = m.c.ReplaceOne(ctx,
		bson.M{"_id": collection},
		collectionDoc{Name: collection, Data: raw},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("write collection %q: %w", collection, err)
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, collection string) error {
	if _, err := m.c.DeleteOne(ctx, bson.M{"_id": collection}); err != nil {
		return fmt.Errorf("delete collection %q: %w", collection, err)
	}
	return nil
}

// Close is a no-op; the mongo client is owned by bootstrap and disconnected
// in the Shutdown hook.
func (m *Mongo) Close(ctx context.Context) error { return nil }
