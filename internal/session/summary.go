package session

import (
	"time"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Summary holds the totals shown on the result screen and written to
// the event log.
type Summary struct {
	SessionID string
	Category  vocab.Category
	Outcome   Outcome

	Questions   int
	AIQuestions int
	Answered    int
	Correct     int

	SessionXP int
	// XPAwarded is what reached UserState.XP; zero unless completed.
	XPAwarded  int
	HeartsLeft int

	EnrichFailures int
	NewlyCompleted []int
	Duration       time.Duration
}

// Accuracy returns Correct/Answered, or 0 when nothing was answered.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// Summary returns the totals of the current session. It is zero when
// idle.
func (c *Controller) Summary() Summary {
	s := c.s
	if s == nil {
		return Summary{}
	}

	end := s.ended
	if end.IsZero() {
		end = c.now()
	}

	return Summary{
		SessionID:      s.prepared.ID,
		Category:       s.prepared.Category,
		Outcome:        s.outcome,
		Questions:      len(s.prepared.Questions),
		AIQuestions:    s.prepared.AIQuestions,
		Answered:       s.answered,
		Correct:        s.right,
		SessionXP:      s.sessionXP,
		XPAwarded:      s.awardedXP,
		HeartsLeft:     s.hearts,
		EnrichFailures: s.prepared.EnrichFailures,
		NewlyCompleted: append([]int(nil), s.newlyDone...),
		Duration:       end.Sub(s.started),
	}
}
