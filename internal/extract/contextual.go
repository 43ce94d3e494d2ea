package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-skills-analyzer/internal/lexicon"
)

// contextTokenRe extracts candidate skill tokens from a context window:
// runs starting with a letter, continuing with letters, digits, or the
// symbol characters common in technology names.
var contextTokenRe = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9+#.]*\b`)

// scanContext runs the contextual strategy: for every case-insensitive
// occurrence of a skill-introducing phrase, the window after the phrase is
// tokenized and the leading tokens are checked against the lexicon. Hits are
// recorded at the lowest confidence since no exact lexical or entity match
// backs them.
func scanContext(lex *lexicon.Index, text string, introducers []string, window, maxTokens int) *skillSet {
	hits := newSkillSet()
	lower := strings.ToLower(text)

	for _, phrase := range introducers {
		needle := strings.ToLower(phrase)
		if needle == "" {
			continue
		}

		from := 0
		for {
			idx := strings.Index(lower[from:], needle)
			if idx < 0 {
				break
			}
			start := from + idx + len(needle)
			end := start + window
			if end > len(lower) {
				end = len(lower)
			}

			words := contextTokenRe.FindAllString(lower[start:end], -1)
			if len(words) > maxTokens {
				words = words[:maxTokens]
			}
			for _, word := range words {
				category := lex.LookupCategory(word)
				if category == lexicon.CategoryOther {
					continue
				}
				hits.add(NormalizeSkillName(lex.DisplayForm(word)), category, confidenceContextual, rankContextual)
			}

			from = start
		}
	}

	return hits
}
