// Package extract implements the skill extraction engine: three matching
// strategies over annotated text, merged into one deduplicated,
// confidence-ranked skill list per document.
package extract

import (
	"context"

	"github.com/jonathan/job-skills-analyzer/internal/annotate"
	"github.com/jonathan/job-skills-analyzer/internal/lexicon"
	"github.com/jonathan/job-skills-analyzer/internal/types"
)

// Options holds the tunable parameters of the engine. Zero values fall back
// to the defaults, so Options{} behaves like DefaultOptions().
type Options struct {
	// EntityLabels are the annotator labels the entity filter accepts.
	EntityLabels []string
	// ContextWindow is how many characters after an introducer phrase the
	// contextual scanner inspects.
	ContextWindow int
	// ContextTokens is how many leading tokens inside each window are
	// checked against the lexicon.
	ContextTokens int
	// Introducers are the skill-introducing phrases, scanned in order.
	Introducers []string
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		EntityLabels:  []string{"product", "organization", "place"},
		ContextWindow: 50,
		ContextTokens: 5,
		Introducers: []string{
			"experience with",
			"proficient in",
			"knowledge of",
			"expertise in",
			"skilled in",
			"familiar with",
			"working with",
			"understanding of",
		},
	}
}

// Extractor analyzes one document at a time. It is safe for concurrent use:
// the lexicon index is read-only and all per-document state is local.
type Extractor struct {
	lex       *lexicon.Index
	annotator annotate.Annotator
	opts      Options
	labels    map[string]struct{}
}

// New creates an extractor over the given lexicon and annotator.
func New(lex *lexicon.Index, annotator annotate.Annotator, opts Options) *Extractor {
	defaults := DefaultOptions()
	if len(opts.EntityLabels) == 0 {
		opts.EntityLabels = defaults.EntityLabels
	}
	if opts.ContextWindow <= 0 {
		opts.ContextWindow = defaults.ContextWindow
	}
	if opts.ContextTokens <= 0 {
		opts.ContextTokens = defaults.ContextTokens
	}
	if len(opts.Introducers) == 0 {
		opts.Introducers = defaults.Introducers
	}

	labels := make(map[string]struct{}, len(opts.EntityLabels))
	for _, l := range opts.EntityLabels {
		labels[l] = struct{}{}
	}

	return &Extractor{
		lex:       lex,
		annotator: annotator,
		opts:      opts,
		labels:    labels,
	}
}

// AnalyzeDocument preprocesses the raw text, annotates it, runs the pattern,
// entity, and contextual strategies, and merges their outputs. It fails only
// when the annotator fails; a document without any skill mention yields an
// empty, valid result.
func (e *Extractor) AnalyzeDocument(ctx context.Context, rawText string) (*types.DocumentAnalysis, error) {
	cleaned := Preprocess(rawText)

	ann, err := e.annotator.Annotate(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	tokens := ann.TokenTexts()
	patternHits := matchPatterns(e.lex, tokens)
	entityHits := filterEntities(e.lex, ann.Entities, e.labels)
	contextHits := scanContext(e.lex, cleaned, e.opts.Introducers, e.opts.ContextWindow, e.opts.ContextTokens)

	skills := mergeSkillSets(patternHits, entityHits, contextHits)

	categories := make(map[string]int)
	for _, s := range skills {
		categories[s.Category]++
	}

	return &types.DocumentAnalysis{
		Skills:           skills,
		TotalSkillsFound: len(skills),
		Categories:       categories,
	}, nil
}
