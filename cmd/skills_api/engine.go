package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/job-skills-analyzer/internal/aggregate"
	"github.com/jonathan/job-skills-analyzer/internal/annotate"
	"github.com/jonathan/job-skills-analyzer/internal/config"
	"github.com/jonathan/job-skills-analyzer/internal/extract"
	"github.com/jonathan/job-skills-analyzer/internal/lexicon"
)

// buildEngine assembles the extraction engine from configuration: the lexicon
// index (built-in database unless a custom file is configured), the built-in
// rule-based annotator, and the batch aggregator on top.
func buildEngine(cfg config.Config, log *zap.Logger) (*extract.Extractor, *aggregate.Aggregator, error) {
	db := lexicon.DefaultDatabase()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.LoadFromJSON(cfg.LexiconPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		db = loaded
	}

	index := lexicon.NewIndex(db)
	log.Debug("lexicon index built",
		zap.Int("aliases", index.Size()),
		zap.Int("categories", len(index.Categories())))

	extractor := extract.New(index, annotate.NewRuleBased(), extract.Options{
		EntityLabels:  cfg.EntityLabels,
		ContextWindow: cfg.ContextWindow,
		ContextTokens: cfg.ContextTokens,
	})
	aggregator := aggregate.New(extractor, cfg.Parallelism, log)

	return extractor, aggregator, nil
}
