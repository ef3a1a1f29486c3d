package session

// Phase is the controller state.
type Phase int

const (
	PhaseIdle     Phase = iota // No session; category selection
	PhaseActive                // Answering questions
	PhaseFinished              // Session over; results shown
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Outcome records how a session ended.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCompleted Outcome = "completed"
	OutcomeDepleted  Outcome = "depleted"
	OutcomeAbandoned Outcome = "abandoned"

	// OutcomeEmpty is a session whose category produced no questions.
	OutcomeEmpty Outcome = "empty"
)
