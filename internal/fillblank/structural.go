package fillblank

import (
	"strings"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

const (
	maxSentenceLen    = 200
	maxExplanationLen = 600
)

// StructuralValidator rejects items without a sentence or answer and
// trims surrounding whitespace.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(item *Item, _ vocab.Verb) *ValidationError {
	item.Sentence = strings.TrimSpace(item.Sentence)
	item.Answer = strings.TrimSpace(item.Answer)
	item.Explanation = strings.TrimSpace(item.Explanation)

	switch {
	case item.Sentence == "":
		return &ValidationError{Validator: v.Name(), Message: "sentence is empty"}
	case item.Answer == "":
		return &ValidationError{Validator: v.Name(), Message: "correctOption is empty"}
	case len(item.Sentence) > maxSentenceLen:
		return &ValidationError{Validator: v.Name(), Message: "sentence is too long"}
	case len(item.Explanation) > maxExplanationLen:
		return &ValidationError{Validator: v.Name(), Message: "explanation is too long"}
	}
	return nil
}
