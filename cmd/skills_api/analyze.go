package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-skills-analyzer/internal/config"
	"github.com/jonathan/job-skills-analyzer/internal/logger"
	"github.com/jonathan/job-skills-analyzer/internal/observability"
)

var (
	analyzeConfigPath string
	analyzeLexicon    string
	analyzeJSON       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze job descriptions from files or stdin",
	Long: `Extract and rank skill mentions from job description text.

With one file the document is analyzed on its own; with several files the
results are additionally aggregated into a cross-document ranking. With no
arguments a single document is read from stdin.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Path to a custom skills database JSON (default: built-in)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print raw JSON instead of the formatted report")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Debug-level logging")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		LexiconPath: analyzeLexicon,
		Verbose:     analyzeVerbose,
	}

	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		cfg.Verbose = cfg.Verbose || loaded.Verbose
	}

	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	extractor, aggregator, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	docs, err := readDocuments(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if len(docs) == 1 {
		analysis, err := extractor.AnalyzeDocument(ctx, docs[0])
		if err != nil {
			return err
		}
		if analyzeJSON {
			return printJSON(cmd.OutOrStdout(), analysis)
		}
		printer.PrintDocumentAnalysis(analysis)
		return nil
	}

	batch := aggregator.AnalyzeBatch(ctx, docs)
	if analyzeJSON {
		return printJSON(cmd.OutOrStdout(), batch)
	}
	printer.PrintBatchReport(batch)
	return nil
}

// readDocuments loads one document per file argument, or a single document
// from stdin when no files are given.
func readDocuments(args []string) ([]string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []string{string(data)}, nil
	}

	docs := make([]string, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, string(data))
	}
	return docs, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
