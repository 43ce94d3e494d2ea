package extract

import (
	"github.com/jonathan/job-skills-analyzer/internal/lexicon"
)

// matchPatterns runs the exact-phrase strategy: every lexicon span in the
// token stream is a hit at the highest confidence. Overlapping spans all
// count, matching the behavior of a multi-pattern phrase matcher.
func matchPatterns(lex *lexicon.Index, tokens []string) *skillSet {
	hits := newSkillSet()

	for _, match := range lex.MatchPhrases(tokens) {
		// Alias resolution first, then the canonical-name table, so
		// lower-cased surface hits still land on one display form.
		name := NormalizeSkillName(match.Display)
		hits.add(name, match.Category, confidencePattern, rankPattern)
	}

	return hits
}
