package annotate

import (
	"context"
	"strings"
	"unicode"
)

// maxEntityTokens bounds how many adjacent capitalized tokens are merged
// into a single entity span.
const maxEntityTokens = 4

// RuleBased is a self-contained annotator with no external dependencies.
// Tokens are maximal runs of letters, digits, and the symbol characters
// common in technology names (+, #, ., /, -), so surfaces like "C++", "C#",
// "Node.js", "CI/CD", and "Scikit-learn" survive as single tokens. Entity
// spans are runs of capitalized tokens, labeled "organization" when fully
// upper-case and "product" otherwise.
type RuleBased struct{}

// NewRuleBased creates the built-in rule-based annotator.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Annotate tokenizes the text and derives entity spans. It fails only when
// the context is already canceled, reporting the cancellation as an
// AnnotationError so batch callers treat it as a per-document failure.
func (a *RuleBased) Annotate(ctx context.Context, text string) (*Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AnnotationError{Message: "annotation canceled", Cause: err}
	}

	tokens := tokenize(text)
	entities := findEntities(text, tokens)

	return &Annotation{Tokens: tokens, Entities: entities}, nil
}

func isTokenRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '+', '#', '.', '/', '-':
		return true
	}
	return false
}

// tokenize splits text into token runs with byte offsets. Leading and
// trailing connector punctuation is trimmed back off each run, except a
// leading dot, which is kept for surfaces like ".NET".
func tokenize(text string) []Token {
	var tokens []Token
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		if tok, ok := trimToken(text, start, end); ok {
			tokens = append(tokens, tok)
		}
		start = -1
	}

	for i, r := range text {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))

	return tokens
}

func trimToken(text string, start, end int) (Token, bool) {
	raw := text[start:end]

	trimmed := strings.TrimLeft(raw, "-/")
	start += len(raw) - len(trimmed)
	raw = trimmed

	trimmed = strings.TrimRight(raw, ".-/")
	end = start + len(trimmed)
	raw = trimmed

	if raw == "" {
		return Token{}, false
	}
	// Require at least one letter or digit; bare symbol runs are noise.
	hasAlnum := false
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasAlnum = true
			break
		}
	}
	if !hasAlnum {
		return Token{}, false
	}

	return Token{Text: raw, Start: start, End: end}, true
}

// entityLike reports whether a token can start or extend an entity span.
func entityLike(tok Token) bool {
	r := []rune(tok.Text)[0]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '.'
}

// adjacent reports whether two tokens are separated by a single space,
// so punctuation like commas breaks entity runs.
func adjacent(text string, prev, next Token) bool {
	return next.Start-prev.End == 1 && text[prev.End] == ' '
}

func findEntities(text string, tokens []Token) []Entity {
	var entities []Entity

	i := 0
	for i < len(tokens) {
		if !entityLike(tokens[i]) {
			i++
			continue
		}

		j := i + 1
		for j < len(tokens) && j-i < maxEntityTokens &&
			entityLike(tokens[j]) && adjacent(text, tokens[j-1], tokens[j]) {
			j++
		}

		start := tokens[i].Start
		end := tokens[j-1].End
		surface := text[start:end]

		// A lone title-case word is usually just a sentence-initial word,
		// not a name. Single-token spans qualify only when fully upper-case
		// or carrying digits or symbol characters.
		if j-i > 1 || strongToken(tokens[i].Text) {
			entities = append(entities, Entity{
				Text:  surface,
				Label: labelFor(surface),
				Start: start,
				End:   end,
			})
		}
		i = j
	}

	return entities
}

func strongToken(text string) bool {
	upper := strings.ToUpper(text)
	if text == upper && len([]rune(text)) > 1 {
		return true
	}
	for _, r := range text {
		if unicode.IsDigit(r) || r == '#' || r == '+' || r == '.' {
			return true
		}
	}
	return false
}

func labelFor(surface string) string {
	upper := strings.ToUpper(surface)
	if surface == upper && len([]rune(surface)) > 1 {
		return "organization"
	}
	return "product"
}
