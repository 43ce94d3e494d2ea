package extract

import (
	"github.com/jonathan/job-skills-analyzer/internal/annotate"
	"github.com/jonathan/job-skills-analyzer/internal/lexicon"
)

// filterEntities runs the entity-confirmation strategy: annotator spans with
// a qualifying label are kept only when their normalized text resolves to a
// known lexicon category. Unknown entities are discarded rather than
// surfaced, so this strategy never introduces skills the lexicon does not
// already know.
func filterEntities(lex *lexicon.Index, entities []annotate.Entity, labels map[string]struct{}) *skillSet {
	hits := newSkillSet()

	for _, ent := range entities {
		if _, ok := labels[ent.Label]; !ok {
			continue
		}
		// Normalize before the lookup: variant spellings like "nodejs"
		// resolve through the canonical table to an alias the lexicon knows.
		normalized := NormalizeSkillName(ent.Text)
		category := lex.LookupCategory(normalized)
		if category == lexicon.CategoryOther {
			continue
		}
		name := NormalizeSkillName(lex.DisplayForm(normalized))
		hits.add(name, category, confidenceEntity, rankEntity)
	}

	return hits
}
