package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used in tests. Documents go through a
// bson round trip on insert so they take the same shape a Mongo read would
// produce, and ids are real object ids so dual-key resolution behaves the
// same as against the production store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
	failPing    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string][]bson.M{}}
}

// FailPing makes Ping report the store as unreachable.
func (s *MemoryStore) FailPing(fail bool) {
	s.mu.Lock()
	s.failPing = fail
	s.mu.Unlock()
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document for %s: %w", collection, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("unmarshal document for %s: %w", collection, err)
	}

	oid := primitive.NewObjectID()
	m["_id"] = oid

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], m)
	s.mu.Unlock()

	return oid.Hex(), nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.FindOne(ctx, collection, bson.M{"_id": oid})
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return copyDoc(doc), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, copyDoc(doc))
		}
	}
	return docs, nil
}

func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := []string{}
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failPing {
		return fmt.Errorf("memory store: ping failed")
	}
	return nil
}

// matches implements the equality filter of the store contract: every
// filter field must be present in the document with an equal value.
func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func copyDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
