package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/google/uuid"
)

// Compile-time check to ensure DocumentStore implements the interface
var _ repositories.DocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps documents in process memory. Used by tests and local runs.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]repositories.Fields
	now         func() time.Time
}

// NewDocumentStore creates an empty DocumentStore
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string]map[string]repositories.Fields),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Get returns a copy of the stored document
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repositories.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields, ok := s.collections[collection][id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	return &repositories.Document{ID: id, Fields: repositories.CopyFields(fields)}, nil
}

// List returns copies of every document in the collection
func (s *DocumentStore) List(ctx context.Context, collection string) ([]*repositories.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*repositories.Document, 0, len(s.collections[collection]))
	for id, fields := range s.collections[collection] {
		docs = append(docs, &repositories.Document{ID: id, Fields: repositories.CopyFields(fields)})
	}
	repositories.SortDocuments(docs)
	return docs, nil
}

// Set writes or merges a document
func (s *DocumentStore) Set(ctx context.Context, collection, id string, fields repositories.Fields, merge bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resolved := repositories.ResolveFields(fields, s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	coll := s.collection(collection)
	if existing, ok := coll[id]; ok && merge {
		coll[id] = repositories.MergeFields(existing, resolved)
		return nil
	}
	coll[id] = resolved
	return nil
}

// Create writes the document unless the id is taken
func (s *DocumentStore) Create(ctx context.Context, collection, id string, fields repositories.Fields) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	resolved := repositories.ResolveFields(fields, s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	coll := s.collection(collection)
	if _, ok := coll[id]; ok {
		return false, nil
	}
	coll[id] = resolved
	return true, nil
}

// Update replaces top-level fields of an existing document
func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields repositories.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resolved := repositories.ResolveFields(fields, s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.collections[collection][id]
	if !ok {
		return repositories.ErrDocumentNotFound
	}
	for k, v := range resolved {
		existing[k] = v
	}
	return nil
}

// Delete removes a document. Deleting an absent document is not an error.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

// Add stores a document under a generated id
func (s *DocumentStore) Add(ctx context.Context, collection string, fields repositories.Fields) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, fields, false); err != nil {
		return "", err
	}
	return id, nil
}

func (s *DocumentStore) collection(name string) map[string]repositories.Fields {
	coll, ok := s.collections[name]
	if !ok {
		coll = make(map[string]repositories.Fields)
		s.collections[name] = coll
	}
	return coll
}
