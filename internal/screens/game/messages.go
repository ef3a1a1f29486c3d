package game

import (
	"time"

	"github.com/carloslator/EnglishVerbs/internal/session"
)

// preparedMsg carries the result of Controller.Prepare.
type preparedMsg struct {
	Prepared *session.Prepared
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
