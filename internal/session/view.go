package session

import (
	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Screen names what the UI should show.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenGame
	ScreenResult
)

// View is the read-only state the UI renders from.
type View struct {
	Screen Screen
	User   UserState

	Category  vocab.Category
	Question  *quiz.Question
	Selected  string
	Checked   bool
	IsCorrect bool
	SessionXP int

	// Index is zero-based; Total is the question count.
	Index int
	Total int

	Outcome Outcome
}

// Progress returns Index/Total, or 0 for an empty session.
func (v View) Progress() float64 {
	if v.Total == 0 {
		return 0
	}
	return float64(v.Index) / float64(v.Total)
}

// IsLast reports whether the current question is the final one.
func (v View) IsLast() bool {
	return v.Total > 0 && v.Index == v.Total-1
}

// View snapshots the controller for rendering.
func (c *Controller) View(user UserState) View {
	v := View{User: user}
	switch c.phase {
	case PhaseActive:
		v.Screen = ScreenGame
	case PhaseFinished:
		v.Screen = ScreenResult
	default:
		return v
	}

	s := c.s
	v.Category = s.prepared.Category
	v.Selected = s.selected
	v.Checked = s.checked
	v.IsCorrect = s.checked && s.correct
	v.SessionXP = s.sessionXP
	v.Index = s.index
	v.Total = len(s.prepared.Questions)
	v.Outcome = s.outcome

	if c.phase == PhaseActive {
		q := s.current()
		v.Question = &q
	}
	return v
}
