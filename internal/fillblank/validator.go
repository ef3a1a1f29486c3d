package fillblank

import (
	"fmt"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Validator checks, and may normalize, a generated item. Validators run
// in order and the first failure discards the item.
type Validator interface {
	Name() string
	Validate(item *Item, verb vocab.Verb) *ValidationError
}

// ValidationError describes why an item was discarded.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
