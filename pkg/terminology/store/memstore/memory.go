// Package memstore is an in-memory store.Store for tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu   sync.RWMutex
	docs map[string]store.Document
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{docs: make(map[string]store.Document)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDocument inserts or replaces a document, keyed by name.
func (s *Store) UpsertDocument(ctx context.Context, d store.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Name == "" {
		return nil
	}
	s.docs[d.Name] = copyDocument(d)
	return nil
}

// GetDocument returns a document by name.
func (s *Store) GetDocument(ctx context.Context, name string) (store.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.docs[name]; ok {
		return copyDocument(doc), true, nil
	}
	return store.Document{}, false, nil
}

// ListDocuments returns all documents in name order.
func (s *Store) ListDocuments(ctx context.Context) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]store.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, copyDocument(s.docs[name]))
	}
	return docs, nil
}

// DeleteDocument removes a document by name.
func (s *Store) DeleteDocument(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, name)
	return nil
}

func copyDocument(d store.Document) store.Document {
	out := store.Document{Name: d.Name}
	if d.Pages != nil {
		out.Pages = make([]store.Page, len(d.Pages))
		copy(out.Pages, d.Pages)
	}
	return out
}
