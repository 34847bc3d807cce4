// Package memory provides an in-memory document store for development and
// tests, and as the bootstrap fallback when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

var _ ports.Store = (*Store)(nil)

// Store keeps one map-backed collection per name, created lazily.
type Store struct {
	mu          sync.Mutex
	collections map[string]*Collection
	newID       func() string
}

// NewStore constructs an empty store with uuid-assigned document ids.
func NewStore() *Store {
	return &Store{
		collections: map[string]*Collection{},
		newID:       uuid.NewString,
	}
}

// WithIDFunc overrides id generation for deterministic testing.
func (s *Store) WithIDFunc(newID func() string) {
	if newID != nil {
		s.newID = newID
	}
}

// Collection returns the named collection, creating it on first use.
func (s *Store) Collection(name string) ports.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[name]
	if !ok {
		coll = &Collection{docs: map[string]domain.Document{}, newID: func() string { return s.newID() }}
		s.collections[name] = coll
	}
	return coll
}

var _ ports.Collection = (*Collection)(nil)

// Collection is a mutex-guarded map of id to document.
type Collection struct {
	mu    sync.RWMutex
	docs  map[string]domain.Document
	newID func() string
}

// Add stores a clone of doc under a fresh id.
func (c *Collection) Add(_ context.Context, doc domain.Document) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.newID()
	c.docs[id] = doc.Clone()
	return id, nil
}

// Get returns a clone of the stored document or ErrNotFound.
func (c *Collection) Get(_ context.Context, id string) (domain.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return doc.Clone(), nil
}

// List returns every document. Map iteration order is deliberately exposed;
// the contract guarantees no ordering.
func (c *Collection) List(_ context.Context) ([]domain.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := make([]domain.Entry, 0, len(c.docs))
	for id, doc := range c.docs {
		entries = append(entries, domain.Entry{ID: id, Data: doc.Clone()})
	}
	return entries, nil
}

// Merge overlays partial onto the stored document, creating it when absent.
func (c *Collection) Merge(_ context.Context, id string, partial domain.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[id]
	if !ok {
		doc = domain.Document{}
	} else {
		doc = doc.Clone()
	}
	for k, v := range partial {
		doc[k] = v
	}
	c.docs[id] = doc
	return nil
}

// Delete removes the document; deleting an absent id is a no-op success.
func (c *Collection) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, id)
	return nil
}
