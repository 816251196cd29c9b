// Package report serializes resolver output into the submission JSON
// formats, with the Chinese field names the downstream consumer expects.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/associate"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/resolve"
)

// TermEntry is one task-1 term definition record.
type TermEntry struct {
	Name       string `json:"术语名称"`
	Definition string `json:"术语定义"`
	Source     string `json:"文档出处"`
	Pages      string `json:"文档页数"`
}

// AssociationEvidence is one document citation in a task-2 record.
type AssociationEvidence struct {
	Source string `json:"文档出处"`
	Pages  string `json:"文档页数"`
}

// AssociationEntry is one task-2 association record. Terms always holds
// exactly two term names.
type AssociationEntry struct {
	Terms      []string              `json:"术语关联"`
	Relation   string                `json:"关联关系"`
	Evidence   []AssociationEvidence `json:"关联描述"`
	Confidence float64               `json:"置信度"`
}

// Task1 builds the ordinal-keyed term map from resolved records. Terms with
// no acceptable definition keep their ordinal with empty fields, so the key
// sequence stays contiguous.
func Task1(records []resolve.Record) map[string]TermEntry {
	out := make(map[string]TermEntry, len(records))
	for _, rec := range records {
		out[rec.Key] = TermEntry{
			Name:       rec.Term,
			Definition: rec.Definition,
			Source:     rec.SourceDoc,
			Pages:      rec.PageLabel,
		}
	}
	return out
}

// Task2 builds the ordinal-keyed association map from accepted records.
func Task2(records []associate.Record) map[string]AssociationEntry {
	out := make(map[string]AssociationEntry, len(records))
	for _, rec := range records {
		entry := AssociationEntry{
			Terms:      []string{rec.TermA, rec.TermB},
			Relation:   string(rec.Relation),
			Confidence: rec.Confidence,
		}
		for _, ev := range rec.Evidence {
			entry.Evidence = append(entry.Evidence, AssociationEvidence{
				Source: ev.SourceDoc,
				Pages:  ev.PageLabel,
			})
		}
		out[rec.Key] = entry
	}
	return out
}

// Save writes v to path as two-space-indented JSON. Map keys marshal in
// sorted order, which for the W/R ordinal keys is ordinal order.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
