// Package lexicon compiles the static skills database into a case-insensitive
// multi-word phrase matcher with a reverse alias-to-category lookup.
// The index is built once at startup and is safe for concurrent reads.
package lexicon

import (
	"strings"
)

// CategoryOther is returned when an alias is not registered in any category.
const CategoryOther = "other"

// Category is one named group of skill aliases from the database.
// Declaration order matters: when the same alias appears in more than one
// category, the earliest-declared category wins the reverse lookup.
type Category struct {
	Name   string   `json:"category"`
	Skills []string `json:"skills"`
}

// Database is the ordered category -> alias-list source for an Index.
type Database []Category

// PhraseMatch is one contiguous token span whose lower-cased surface text
// equals a registered alias. Overlapping matches are all reported; dedup is
// the caller's concern.
type PhraseMatch struct {
	Start    int // index of the first token in the span
	End      int // index one past the last token in the span
	Category string
	Display  string // the registered display-cased alias
}

type aliasEntry struct {
	category string
	display  string // display-cased form as declared in the database
	order    int    // declaration order, for deterministic tie-breaking
}

// Index is the compiled, immutable form of a Database.
type Index struct {
	aliases    map[string]aliasEntry // lower-cased alias -> category
	categories []string              // declaration order
	maxWords   int                   // longest alias in words
	size       int
}

// NewIndex compiles the database. An empty database yields a valid index
// that matches nothing.
func NewIndex(db Database) *Index {
	ix := &Index{
		aliases:  make(map[string]aliasEntry),
		maxWords: 1,
	}

	order := 0
	for _, cat := range db {
		ix.categories = append(ix.categories, cat.Name)
		for _, alias := range cat.Skills {
			display := strings.Join(strings.Fields(alias), " ")
			key := strings.ToLower(display)
			if key == "" {
				continue
			}
			// First-declared category wins for duplicate aliases
			if _, exists := ix.aliases[key]; exists {
				continue
			}
			ix.aliases[key] = aliasEntry{category: cat.Name, display: display, order: order}
			order++
			ix.size++
			if n := len(strings.Fields(key)); n > ix.maxWords {
				ix.maxWords = n
			}
		}
	}

	return ix
}

// LookupCategory returns the category registered for the given phrase,
// or CategoryOther if the phrase is not a known alias. Matching is
// case-insensitive and whitespace-insensitive.
func (ix *Index) LookupCategory(phrase string) string {
	key := strings.ToLower(strings.Join(strings.Fields(phrase), " "))
	if entry, ok := ix.aliases[key]; ok {
		return entry.category
	}
	return CategoryOther
}

// DisplayForm returns the registered display-cased alias for the phrase,
// or the phrase itself (whitespace-collapsed) when it is not a known alias.
func (ix *Index) DisplayForm(phrase string) string {
	collapsed := strings.Join(strings.Fields(phrase), " ")
	if entry, ok := ix.aliases[strings.ToLower(collapsed)]; ok {
		return entry.display
	}
	return collapsed
}

// MatchPhrases scans the token stream and returns every contiguous span whose
// lower-cased surface text equals a registered alias. Spans of different
// lengths starting at the same token are all returned.
func (ix *Index) MatchPhrases(tokens []string) []PhraseMatch {
	var matches []PhraseMatch

	for i := 0; i < len(tokens); i++ {
		limit := ix.maxWords
		if remaining := len(tokens) - i; limit > remaining {
			limit = remaining
		}
		for n := 1; n <= limit; n++ {
			key := strings.ToLower(strings.Join(tokens[i:i+n], " "))
			if entry, ok := ix.aliases[key]; ok {
				matches = append(matches, PhraseMatch{
					Start:    i,
					End:      i + n,
					Category: entry.category,
					Display:  entry.display,
				})
			}
		}
	}

	return matches
}

// Categories returns the category names in declaration order.
func (ix *Index) Categories() []string {
	out := make([]string, len(ix.categories))
	copy(out, ix.categories)
	return out
}

// Size returns the number of distinct aliases in the index.
func (ix *Index) Size() int {
	return ix.size
}
