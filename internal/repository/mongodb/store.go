// Package mongodb bridges validated records to the MongoDB document
// store. Connection is attempted exactly once at process start; if it
// fails, the store stays disconnected for the process lifetime and every
// operation reports domain.ErrStoreUnavailable.
package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ekhayalegae/internal/domain"
)

// Store holds the shared database handle. It is read-only after Connect,
// so concurrent requests need no additional locking.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds a Store from the configured connection string and
// database name. A missing configuration or a failed connection is
// tolerated: the returned Store is permanently disconnected and the
// condition shows up in the /test diagnostics, not as a fatal error.
func Connect(ctx context.Context, logger *slog.Logger, uri, dbName string) *Store {
	s := &Store{}
	if uri == "" || dbName == "" {
		logger.Warn("document store not configured, running without persistence")
		return s
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Warn("document store connection failed, running without persistence", "err", err)
		return s
	}
	s.client = client
	s.db = client.Database(dbName)
	return s
}

// Connected reports whether a database handle exists. It does not ping.
func (s *Store) Connected() bool {
	return s.db != nil
}

// CollectionNames lists the collections currently present, best-effort,
// for the diagnostics endpoint.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Disconnect releases the underlying client. Safe on a disconnected Store.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.db.Collection(name), nil
}
