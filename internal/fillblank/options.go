package fillblank

import (
	"strings"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// OptionsValidator cleans the distractor list: entries are trimmed,
// blanks and case-insensitive repeats of the answer or of each other are
// dropped, and at most MaxDistractors are kept. At least one must remain.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(item *Item, _ vocab.Verb) *ValidationError {
	seen := map[string]bool{strings.ToLower(item.Answer): true}
	kept := make([]string, 0, MaxDistractors)

	for _, d := range item.Distractors {
		d = strings.TrimSpace(d)
		key := strings.ToLower(d)
		if d == "" || seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
		if len(kept) == MaxDistractors {
			break
		}
	}

	if len(kept) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "no usable distractors"}
	}
	item.Distractors = kept
	return nil
}
