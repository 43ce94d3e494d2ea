package extract

import (
	"sort"

	"github.com/jonathan/job-skills-analyzer/internal/types"
)

// Extraction confidence per strategy. The rank orders strategies for
// tie-breaking when two strategies report equal confidence for a skill.
const (
	confidencePattern    = 0.95
	confidenceEntity     = 0.75
	confidenceContextual = 0.60

	rankPattern    = 3
	rankEntity     = 2
	rankContextual = 1
)

// record is the uniform per-strategy tuple the merge folds over.
type record struct {
	name       string
	category   string
	confidence float64
	rank       int
	count      int
}

// skillSet accumulates one strategy's hits, keyed by canonical name,
// preserving discovery order for deterministic downstream sorting.
type skillSet struct {
	records map[string]*record
	order   []string
}

func newSkillSet() *skillSet {
	return &skillSet{records: make(map[string]*record)}
}

// add records one hit. The first hit for a name fixes its category.
func (s *skillSet) add(name, category string, confidence float64, rank int) {
	if existing, ok := s.records[name]; ok {
		existing.count++
		return
	}
	s.records[name] = &record{
		name:       name,
		category:   category,
		confidence: confidence,
		rank:       rank,
		count:      1,
	}
	s.order = append(s.order, name)
}

// mergeSkillSets folds the strategies' outputs into the final per-document
// skill list: counts sum, confidence takes the maximum, and category follows
// the highest-confidence strategy (earlier sets win ties, so callers pass
// sets in precedence order). The result is sorted by count descending then
// confidence descending; remaining ties keep discovery order.
func mergeSkillSets(sets ...*skillSet) []types.DetectedSkill {
	merged := make(map[string]*record)
	var order []string

	for _, set := range sets {
		for _, name := range set.order {
			rec := set.records[name]
			existing, ok := merged[name]
			if !ok {
				clone := *rec
				merged[name] = &clone
				order = append(order, name)
				continue
			}
			existing.count += rec.count
			if rec.confidence > existing.confidence ||
				(rec.confidence == existing.confidence && rec.rank > existing.rank) {
				existing.confidence = rec.confidence
				existing.category = rec.category
				existing.rank = rec.rank
			}
		}
	}

	skills := make([]types.DetectedSkill, 0, len(order))
	for _, name := range order {
		rec := merged[name]
		skills = append(skills, types.DetectedSkill{
			Name:       rec.name,
			Count:      rec.count,
			Category:   rec.category,
			Confidence: rec.confidence,
		})
	}

	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Count != skills[j].Count {
			return skills[i].Count > skills[j].Count
		}
		return skills[i].Confidence > skills[j].Confidence
	})

	return skills
}
