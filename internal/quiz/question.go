package quiz

import (
	"fmt"
	"strings"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// QuestionType identifies how a question is posed.
type QuestionType string

const (
	TypeTranslateToSpanish QuestionType = "translate-to-spanish"
	TypeTranslateToEnglish QuestionType = "translate-to-english"
	TypeFillBlank          QuestionType = "fill-blank"
	TypeListening          QuestionType = "listening"
)

// MaxOptions is the number of choices shown per question.
const MaxOptions = 4

// Question is one multiple-choice item in a session.
type Question struct {
	Type        QuestionType
	Verb        vocab.Verb
	Text        string
	Options     []string
	Answer      string
	Explanation string
}

// IsCorrect reports whether option matches the answer exactly.
func (q Question) IsCorrect(option string) bool {
	return option == q.Answer
}

// AnswerIndex returns the position of the answer in Options, or -1.
func (q Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}

// SpeaksOnSelect reports whether choosing an option should read it aloud.
// Options of these types are English text.
func (q Question) SpeaksOnSelect() bool {
	return q.Type == TypeTranslateToEnglish || q.Type == TypeFillBlank
}

// Prompt returns the English text to read aloud for this question, if any.
func (q Question) Prompt() (string, bool) {
	switch q.Type {
	case TypeTranslateToSpanish, TypeListening:
		return q.Verb.English, true
	}
	return "", false
}

// IsAI reports whether the question came from the language model.
func (q Question) IsAI() bool {
	return q.Type == TypeFillBlank
}

// CheckQuestion verifies the option invariants of q.
func CheckQuestion(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) == 0 || len(q.Options) > MaxOptions {
		return fmt.Errorf("question has %d options, want 1..%d", len(q.Options), MaxOptions)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if seen[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
	if !seen[q.Answer] {
		return fmt.Errorf("answer %q is not among the options", q.Answer)
	}
	return nil
}
