package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names. One collection per entity kind, matching the lowercase
// entity name.
const (
	CollectionTournament  = "tournament"
	CollectionParticipant = "participant"
	CollectionMatch       = "match"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id-shaped string cannot be parsed
	// into a store-native object id.
	ErrInvalidID = errors.New("invalid document id")
)

// Store is the document store used by all services. The production
// implementation is MongoStore; MemoryStore substitutes it in tests.
// The handle is process-scoped: connected once at startup and shared.
type Store interface {
	// Insert adds a document to the named collection and returns the
	// store-assigned id as a hex string.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// FindByID fetches a single document by its internal id. Returns
	// ErrInvalidID if the string is not a well-formed object id and
	// ErrNotFound if no document has that id.
	FindByID(ctx context.Context, collection, id string) (bson.M, error)

	// FindOne fetches the first document matching an equality filter.
	// Returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)

	// Find returns all documents matching an equality filter, in
	// store-native order. A nil filter matches everything.
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)

	// Collections lists the collection names present in the database.
	Collections(ctx context.Context) ([]string, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
}
