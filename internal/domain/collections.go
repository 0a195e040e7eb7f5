package domain

import "context"

// Collection names in the document store. Each entity type lives in its
// own collection, named after the lowercase entity name.
const (
	CollectionEvent               = "event"
	CollectionBooking             = "booking"
	CollectionTrainingApplication = "trainingapplication"
	CollectionContactMessage      = "contactmessage"
	CollectionStory               = "story"
	CollectionPartner             = "partner"
	CollectionResource            = "resource"
	CollectionSiteStat            = "sitestat"
)

// Filter is an exact-match filter mapping field names to required values.
// An empty or nil filter matches every document in the collection.
type Filter map[string]any

// Collection defines storage operations for one entity type's collection.
// Insert returns the store-assigned identifier of the new document.
// Find returns up to limit matching documents (limit 0 means unbounded);
// ordering is not guaranteed.
type Collection[T any] interface {
	Insert(ctx context.Context, doc *T) (string, error)
	Find(ctx context.Context, filter Filter, limit int64) ([]*T, error)
}

// StoreInfo reports document store connectivity for the diagnostics endpoint.
type StoreInfo interface {
	Connected() bool
	CollectionNames(ctx context.Context) ([]string, error)
}
