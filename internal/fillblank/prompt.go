package fillblank

import (
	"fmt"
	"strings"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

const systemPrompt = `You write English vocabulary exercises for Spanish-speaking beginners.

Rules:
- Write one short, everyday English sentence that uses the given verb.
- Replace the verb with ___ (three underscores). Use exactly one blank.
- correctOption is the exact word that fills the blank, in the form the sentence needs.
- Give 3 distractors: other English verbs in the same form that do not fit the sentence.
- The explanation is one simple sentence about why the answer fits.
- Return JSON only.`

// buildUserMessage describes the target verb. suggestions are other
// verbs the student knows and may be used as distractors.
func buildUserMessage(verb vocab.Verb, suggestions []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Verb: %s\n", verb.English)
	fmt.Fprintf(&b, "Spanish: %s\n", verb.Spanish)
	fmt.Fprintf(&b, "Topic: %s\n", verb.Category.DisplayName())

	if len(suggestions) > 0 {
		fmt.Fprintf(&b, "\nDistractor ideas: %s\n", strings.Join(suggestions, ", "))
	}
	return b.String()
}
