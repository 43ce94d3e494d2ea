// Package annotate defines the text-annotation contract consumed by the
// extraction engine. An Annotator turns raw text into a token stream plus a
// set of labeled entity spans; the engine never depends on how those spans
// are computed, so a statistical model, a rule-based tagger, or a test stub
// can all be plugged in.
package annotate

import (
	"context"
	"fmt"
)

// Token is a single token with byte offsets into the annotated text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Entity is a named-entity span with a coarse label such as "product",
// "organization", or "place".
type Entity struct {
	Text  string
	Label string
	Start int
	End   int
}

// Annotation is the full annotator output for one document.
type Annotation struct {
	Tokens   []Token
	Entities []Entity
}

// Annotator is the narrow interface the extraction engine depends on.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Annotation, error)
}

// AnnotationError represents a failure of the underlying annotator.
// Within a batch it affects only the document being annotated.
type AnnotationError struct {
	Message string
	Cause   error
}

func (e *AnnotationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("annotation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("annotation failed: %s", e.Message)
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}

// TokenTexts returns just the surface strings of the annotation's tokens.
func (a *Annotation) TokenTexts() []string {
	texts := make([]string, len(a.Tokens))
	for i, tok := range a.Tokens {
		texts[i] = tok.Text
	}
	return texts
}
