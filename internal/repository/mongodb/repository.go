package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ekhayalegae/internal/domain"
)

// Repository is a typed view over one collection. The type parameter
// gives compile-time field safety while keeping the plain
// collection-name-to-entity mapping of the document store.
type Repository[T any] struct {
	store      *Store
	collection string
}

// NewRepository returns a Repository bound to the named collection.
func NewRepository[T any](store *Store, collection string) *Repository[T] {
	return &Repository[T]{
		store:      store,
		collection: collection,
	}
}

// Insert appends the record to the collection and returns the
// store-assigned identifier as an opaque hex string.
func (r *Repository[T]) Insert(ctx context.Context, doc *T) (string, error) {
	coll, err := r.store.collection(r.collection)
	if err != nil {
		return "", err
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", r.collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// Find returns up to limit records matching the exact-match filter.
// limit 0 means unbounded. No sort is applied; ordering is whatever the
// store returns. The result slice is never nil.
func (r *Repository[T]) Find(ctx context.Context, filter domain.Filter, limit int64) ([]*T, error) {
	coll, err := r.store.collection(r.collection)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = domain.Filter{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := coll.Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.collection, err)
	}
	defer cur.Close(ctx)

	docs := make([]*T, 0)
	for cur.Next(ctx) {
		doc := new(T)
		if err := cur.Decode(doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", r.collection, err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.collection, err)
	}
	return docs, nil
}
