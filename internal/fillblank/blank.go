package fillblank

import (
	"regexp"
	"strings"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// blankRun matches a placeholder the model may write as two or more
// underscores.
var blankRun = regexp.MustCompile(`_{2,}`)

// BlankValidator requires exactly one placeholder and rewrites it to
// Blank. A sentence that already contains the answer gives it away.
type BlankValidator struct{}

func (v *BlankValidator) Name() string { return "blank" }

func (v *BlankValidator) Validate(item *Item, _ vocab.Verb) *ValidationError {
	runs := blankRun.FindAllStringIndex(item.Sentence, -1)
	if len(runs) != 1 {
		return &ValidationError{Validator: v.Name(), Message: "sentence must contain exactly one blank"}
	}
	item.Sentence = blankRun.ReplaceAllString(item.Sentence, Blank)

	rest := strings.ToLower(strings.Replace(item.Sentence, Blank, " ", 1))
	for _, word := range strings.FieldsFunc(rest, notLetter) {
		if word == strings.ToLower(item.Answer) {
			return &ValidationError{Validator: v.Name(), Message: "sentence reveals the answer"}
		}
	}
	return nil
}

func notLetter(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r == '\'')
}
