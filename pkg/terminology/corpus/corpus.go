package corpus

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/internalerr"
)

// Page is one page of extracted plain text. Number is 1-based.
type Page struct {
	Number int    `json:"page_number"`
	Text   string `json:"text"`
}

// Document is an ordered sequence of pages produced by the ingestion
// collaborator. The engine never opens the underlying binary file.
type Document struct {
	Name  string `json:"file_name"`
	Pages []Page `json:"pages"`
}

// Validate checks the page-numbering invariant: numbers are positive,
// unique, and increasing within the document.
func (d Document) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: document without a name", internalerr.ErrInvalidCorpus)
	}
	prev := 0
	for _, p := range d.Pages {
		if p.Number < 1 {
			return fmt.Errorf("%w: %s: page number %d is not positive", internalerr.ErrInvalidCorpus, d.Name, p.Number)
		}
		if p.Number <= prev {
			return fmt.Errorf("%w: %s: page number %d after %d", internalerr.ErrInvalidCorpus, d.Name, p.Number, prev)
		}
		prev = p.Number
	}
	return nil
}

// ValidateAll checks every document in a corpus.
func ValidateAll(docs []Document) error {
	for _, d := range docs {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeDocName converts a file name into the canonical document source
// name: the extension is stripped and underscores become hyphens. No other
// transformation is applied.
func NormalizeDocName(filename string) string {
	if filename == "" {
		return ""
	}
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.ReplaceAll(stem, "_", "-")
}
