package game

import (
	"context"

	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/store"
)

func (g *GameScreen) journalStart(p *session.Prepared) {
	if g.env.Events == nil {
		return
	}
	_ = g.env.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:      p.ID,
		Category:       string(p.Category),
		Action:         store.ActionStart,
		Questions:      len(p.Questions),
		AIQuestions:    p.AIQuestions,
		EnrichFailures: p.EnrichFailures,
	})
}

func (g *GameScreen) journalEnd(sum session.Summary) {
	if g.env.Events == nil {
		return
	}
	_ = g.env.Events.AppendSessionEvent(context.Background(), endEvent(sum))
}

func endEvent(sum session.Summary) store.SessionEventData {
	return store.SessionEventData{
		SessionID:      sum.SessionID,
		Category:       string(sum.Category),
		Action:         store.ActionEnd,
		Questions:      sum.Questions,
		AIQuestions:    sum.AIQuestions,
		Correct:        sum.Correct,
		XPEarned:       sum.XPAwarded,
		HeartsLeft:     sum.HeartsLeft,
		Outcome:        string(sum.Outcome),
		EnrichFailures: sum.EnrichFailures,
		DurationSecs:   int(sum.Duration.Seconds()),
	}
}
