package screen

import (
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/speech"
	"github.com/carloslator/EnglishVerbs/internal/store"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Env carries the collaborators shared by all screens.
type Env struct {
	Controller *session.Controller

	// User is the learner for this run of the program. Screens replace
	// it with the value each controller operation returns.
	User *session.UserState

	Speaker speech.Speaker

	// Events journals session start and end. Nil disables journaling.
	Events store.EventRepo

	// AIModel names the model behind fill-in-the-blank questions, empty
	// when AI questions are off.
	AIModel string
}

// PlayMsg asks the dashboard to start a session in Category.
type PlayMsg struct {
	Category vocab.Category
}
