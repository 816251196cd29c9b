package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// LoadJSONL loads a corpus from a JSONL file, one document per line:
//
//	{"file_name": "GB_T_39419-2020.pdf", "pages": [{"page_number": 1, "text": "..."}]}
//
// Malformed lines are skipped with a warning; documents that violate the
// page-numbering invariant fail the whole load, since the engine assumes a
// well-formed corpus.
func LoadJSONL(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var docs []Document
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}
	return docs, nil
}
