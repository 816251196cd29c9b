// Package store defines the corpus persistence interface.
package store

import (
	"context"
)

// Store is the interface for persisting and reading the standards corpus.
// Documents are keyed by their normalized name; pages live with their
// document.
type Store interface {
	Close() error

	UpsertDocument(ctx context.Context, d Document) error
	GetDocument(ctx context.Context, name string) (Document, bool, error)
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, name string) error
}

// Document is a stored standards document.
type Document struct {
	Name  string
	Pages []Page
}

// Page is one page of extracted text.
type Page struct {
	Number int
	Text   string
}
