// Package sqlite implements the corpus store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite corpus database with WAL mode enabled, creating the
// schema when missing.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for concurrent readers during import
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS pages (
	doc_id INTEGER NOT NULL,
	page_number INTEGER NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY(doc_id, page_number),
	FOREIGN KEY(doc_id) REFERENCES documents(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_pages_doc ON pages(doc_id);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDocument replaces the document and all its pages in one
// transaction.
func (s *sqliteStore) UpsertDocument(ctx context.Context, d store.Document) error {
	if d.Name == "" {
		return fmt.Errorf("upsert document: empty name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents(name) VALUES(?) ON CONFLICT(name) DO NOTHING`, d.Name); err != nil {
		return err
	}

	var docID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM documents WHERE name = ?`, d.Name).Scan(&docID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE doc_id = ?`, docID); err != nil {
		return err
	}
	for _, p := range d.Pages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pages(doc_id, page_number, text) VALUES(?, ?, ?)`,
			docID, p.Number, p.Text); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetDocument returns a document with its pages in page order.
func (s *sqliteStore) GetDocument(ctx context.Context, name string) (store.Document, bool, error) {
	var docID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM documents WHERE name = ?`, name).Scan(&docID)
	if err == sql.ErrNoRows {
		return store.Document{}, false, nil
	}
	if err != nil {
		return store.Document{}, false, err
	}

	pages, err := s.loadPages(ctx, docID)
	if err != nil {
		return store.Document{}, false, err
	}
	return store.Document{Name: name, Pages: pages}, true, nil
}

// ListDocuments returns every stored document in name order, pages
// included.
func (s *sqliteStore) ListDocuments(ctx context.Context) ([]store.Document, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM documents ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type docRow struct {
		id   int64
		name string
	}
	var ids []docRow
	for rows.Next() {
		var r docRow
		if err := rows.Scan(&r.id, &r.name); err != nil {
			return nil, err
		}
		ids = append(ids, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	docs := make([]store.Document, 0, len(ids))
	for _, r := range ids {
		pages, err := s.loadPages(ctx, r.id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, store.Document{Name: r.name, Pages: pages})
	}
	return docs, nil
}

// DeleteDocument removes a document and its pages. Deleting an absent
// document is not an error.
func (s *sqliteStore) DeleteDocument(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, name)
	return err
}

func (s *sqliteStore) loadPages(ctx context.Context, docID int64) ([]store.Page, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page_number, text FROM pages WHERE doc_id = ? ORDER BY page_number`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []store.Page
	for rows.Next() {
		var p store.Page
		if err := rows.Scan(&p.Number, &p.Text); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}
