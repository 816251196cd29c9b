package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/syyyclover/ocean-terminology/internal/htmltext"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/store"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/store/sqlite"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "Corpus SQLite database (required)")
		dataPath = flag.String("data", "", "Corpus JSONL file")
		htmlDir  = flag.String("html", "", "Directory of HTML standards pages")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *dataPath == "" && *htmlDir == "" {
		log.Fatal("--data or --html required")
	}

	var docs []corpus.Document
	var err error
	switch {
	case *dataPath != "":
		docs, err = corpus.LoadJSONL(*dataPath)
	default:
		docs, err = loadHTMLDir(*htmlDir)
	}
	if err != nil {
		log.Fatal("Failed to load corpus:", err)
	}
	log.Printf("Loaded %d documents", len(docs))

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	for _, doc := range docs {
		stored := store.Document{Name: corpus.NormalizeDocName(doc.Name)}
		for _, p := range doc.Pages {
			stored.Pages = append(stored.Pages, store.Page{Number: p.Number, Text: p.Text})
		}
		if err := st.UpsertDocument(ctx, stored); err != nil {
			log.Fatal("Failed to store document:", err)
		}
		log.Printf("Imported %s (%d pages)", stored.Name, len(stored.Pages))
	}
}

// loadHTMLDir reads every .html file in dir as a single-page document, with
// script and style content stripped. Page numbering invariants are checked
// the same way as for JSONL input.
func loadHTMLDir(dir string) ([]corpus.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []corpus.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".html" && ext != ".htm" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		text := htmltext.Extract(string(raw))
		if text == "" {
			log.Printf("Warning: skipping empty document %s", name)
			continue
		}
		docs = append(docs, corpus.Document{
			Name:  name,
			Pages: []corpus.Page{{Number: 1, Text: text}},
		})
	}

	if err := corpus.ValidateAll(docs); err != nil {
		return nil, err
	}
	return docs, nil
}
