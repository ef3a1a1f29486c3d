package store

import (
	"context"
	"fmt"
	"time"
)

const sessionColumns = `id, sequence, timestamp, session_id, category, action, questions,
	ai_questions, correct, xp_earned, hearts_left, outcome, enrich_failures, duration_secs`

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO session_events (
		sequence, timestamp, session_id, category, action, questions, ai_questions,
		correct, xp_earned, hearts_left, outcome, enrich_failures, duration_secs
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.Category, data.Action,
		data.Questions, data.AIQuestions, data.Correct, data.XPEarned, data.HeartsLeft,
		data.Outcome, data.EnrichFailures, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	where, args := opts.where(map[string]string{"category": opts.Category})
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM session_events"+where+" ORDER BY sequence DESC"+opts.limit(),
		args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var e SessionEvent
		var ts int64
		err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Category, &e.Action,
			&e.Questions, &e.AIQuestions, &e.Correct, &e.XPEarned, &e.HeartsLeft,
			&e.Outcome, &e.EnrichFailures, &e.DurationSecs)
		if err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// SessionStatsByCategory aggregates end events only.
func (r *eventRepo) SessionStatsByCategory(ctx context.Context) ([]CategoryStats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, COUNT(*),
		SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		SUM(correct), SUM(questions), SUM(xp_earned)
		FROM session_events WHERE action = ?
		GROUP BY category ORDER BY category`, OutcomeCompleted, ActionEnd)
	if err != nil {
		return nil, fmt.Errorf("query session stats: %w", err)
	}
	defer rows.Close()

	var out []CategoryStats
	for rows.Next() {
		var s CategoryStats
		if err := rows.Scan(&s.Category, &s.Sessions, &s.Completed, &s.Correct, &s.Questions, &s.XPEarned); err != nil {
			return nil, fmt.Errorf("scan session stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
