// Package aggregate runs the document analyzer over a batch of documents and
// merges the per-document results into ranked cross-document statistics.
package aggregate

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-skills-analyzer/internal/extract"
	"github.com/jonathan/job-skills-analyzer/internal/types"
)

const (
	// DefaultParallelism bounds how many documents are analyzed concurrently.
	DefaultParallelism = 4
	// TopSkillsLimit is how many entries the top-skills ranking keeps.
	TopSkillsLimit = 20
)

// Aggregator fans document analyses out across workers and reduces the
// results. Per-document analyses share only the read-only lexicon, so the
// fan-out needs no locking; the reduction runs single-threaded afterwards.
type Aggregator struct {
	extractor   *extract.Extractor
	parallelism int
	log         *zap.Logger
}

// New creates an aggregator. parallelism <= 0 uses DefaultParallelism;
// a nil logger disables logging.
func New(extractor *extract.Extractor, parallelism int, log *zap.Logger) *Aggregator {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{
		extractor:   extractor,
		parallelism: parallelism,
		log:         log,
	}
}

// AnalyzeBatch analyzes every document and aggregates the results. One
// document's annotation failure is recorded on its individual analysis and
// does not abort the rest of the batch.
func (a *Aggregator) AnalyzeBatch(ctx context.Context, docs []string) *types.BatchAnalysis {
	analyses := make([]*types.DocumentAnalysis, len(docs))

	g := new(errgroup.Group)
	g.SetLimit(a.parallelism)

	for i, doc := range docs {
		g.Go(func() error {
			analysis, err := a.extractor.AnalyzeDocument(ctx, doc)
			if err != nil {
				a.log.Warn("document analysis failed",
					zap.Int("document", i),
					zap.Error(err))
				analysis = &types.DocumentAnalysis{
					Skills:     []types.DetectedSkill{},
					Categories: map[string]int{},
					Error:      err.Error(),
				}
			}
			analyses[i] = analysis
			return nil
		})
	}
	// Workers never return errors; failures live on the per-document results.
	_ = g.Wait()

	return a.reduce(docs, analyses)
}

type aggRecord struct {
	name       string
	category   string
	totalCount int
	jobCount   int
}

func (a *Aggregator) reduce(docs []string, analyses []*types.DocumentAnalysis) *types.BatchAnalysis {
	records := make(map[string]*aggRecord)
	var order []string

	individual := make([]types.DocumentAnalysis, len(analyses))
	for i, analysis := range analyses {
		individual[i] = *analysis

		// Skills are unique per canonical name within one document, so a
		// plain increment counts distinct documents.
		for _, skill := range analysis.Skills {
			rec, ok := records[skill.Name]
			if !ok {
				rec = &aggRecord{name: skill.Name, category: skill.Category}
				records[skill.Name] = rec
				order = append(order, skill.Name)
			}
			rec.totalCount += skill.Count
			rec.jobCount++
		}
	}

	totalJobs := len(docs)
	aggregated := make([]types.AggregatedSkill, 0, len(order))
	for _, name := range order {
		rec := records[name]
		aggregated = append(aggregated, types.AggregatedSkill{
			Name:           rec.name,
			TotalCount:     rec.totalCount,
			AppearedInJobs: rec.jobCount,
			Percentage:     roundPercentage(rec.jobCount, totalJobs),
			Category:       rec.category,
		})
	}

	sort.SliceStable(aggregated, func(i, j int) bool {
		return aggregated[i].TotalCount > aggregated[j].TotalCount
	})

	top := aggregated
	if len(top) > TopSkillsLimit {
		top = top[:TopSkillsLimit]
	}

	breakdown := make(map[string]int)
	for _, skill := range aggregated {
		breakdown[skill.Category]++
	}

	a.log.Debug("batch aggregation complete",
		zap.Int("total_jobs", totalJobs),
		zap.Int("distinct_skills", len(aggregated)))

	return &types.BatchAnalysis{
		TotalJobs:          totalJobs,
		AggregatedSkills:   aggregated,
		TopSkills:          top,
		CategoryBreakdown:  breakdown,
		IndividualAnalyses: individual,
	}
}

// roundPercentage converts a document-frequency ratio to a percentage with
// one decimal place.
func roundPercentage(jobCount, totalJobs int) float64 {
	if totalJobs == 0 {
		return 0
	}
	pct := float64(jobCount) / float64(totalJobs) * 100
	return math.Round(pct*10) / 10
}
