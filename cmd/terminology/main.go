package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/syyyclover/ocean-terminology/pkg/terminology"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/config"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/report"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/store/sqlite"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/validate"
)

func main() {
	var (
		termsPath  = flag.String("terms", "", "JSON file with the term list (required)")
		corpusPath = flag.String("corpus", "", "Corpus JSONL file")
		dbPath     = flag.String("db", "", "Corpus SQLite database")
		configPath = flag.String("config", "", "YAML config file (optional)")
		outDir     = flag.String("out", "output", "Output directory")
		task       = flag.String("task", "all", "Task to run: 1, 2, or all")
	)
	flag.Parse()

	if *termsPath == "" {
		log.Fatal("--terms required")
	}
	if *corpusPath == "" && *dbPath == "" {
		log.Fatal("--corpus or --db required")
	}
	if *task != "1" && *task != "2" && *task != "all" {
		log.Fatal("--task must be 1, 2, or all")
	}

	terms, err := loadTerms(*termsPath)
	if err != nil {
		log.Fatal("Failed to load terms:", err)
	}
	log.Printf("Loaded %d terms", len(terms))

	loader := config.Loader{ConfigPath: *configPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	cfg := components.Config

	ctx := context.Background()
	opts := terminology.Options{
		SimilarityThreshold: cfg.TermExtraction.SimilarityThreshold,
		AssociationGate:     cfg.Association.MinConfidence,
		MinDefinitionLen:    cfg.TermExtraction.MinDefinitionLen,
		MaxDefinitionLen:    cfg.TermExtraction.MaxDefinitionLen,
	}

	var docs []corpus.Document
	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		opts.Store = st
	}

	eng := terminology.New(opts)
	defer eng.Close()

	if *dbPath != "" {
		docs, err = eng.LoadCorpus(ctx)
	} else {
		docs, err = corpus.LoadJSONL(*corpusPath)
	}
	if err != nil {
		log.Fatal("Failed to load corpus:", err)
	}
	log.Printf("Loaded %d documents", len(docs))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}

	reporter := validate.NewReporter()

	var task1 map[string]report.TermEntry
	var task2 map[string]report.AssociationEntry

	if *task == "1" || *task == "all" {
		records := eng.ResolveTerms(terms, docs)
		raw := report.Task1(records)
		valid, violations := validate.ValidateTask1(raw)
		logViolations("task1", violations)
		task1 = valid

		path := filepath.Join(*outDir, "task1_results.json")
		if err := report.Save(path, task1); err != nil {
			log.Fatal("Failed to save task1 results:", err)
		}
		log.Printf("Task 1: %d terms resolved, written to %s", len(task1), path)
	}

	if *task == "2" || *task == "all" {
		records := eng.ResolveAssociations(terms, docs)
		raw := report.Task2(records)
		valid, violations := validate.ValidateTask2(raw)
		logViolations("task2", violations)
		task2 = valid

		path := filepath.Join(*outDir, "task2_results.json")
		if err := report.Save(path, task2); err != nil {
			log.Fatal("Failed to save task2 results:", err)
		}
		log.Printf("Task 2: %d associations found, written to %s", len(task2), path)
	}

	rep := reporter.Build(task1, task2)
	reportPath := filepath.Join(*outDir, "validation_report.json")
	if err := report.Save(reportPath, rep); err != nil {
		log.Fatal("Failed to save validation report:", err)
	}
	log.Printf("Validation: %s (overall %.2f), report written to %s",
		rep.Overall.Status, rep.Overall.OverallScore, reportPath)
}

// loadTerms reads a JSON array of term strings.
func loadTerms(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func logViolations(task string, violations []string) {
	for _, v := range violations {
		log.Printf("%s validation: %s", task, v)
	}
}
