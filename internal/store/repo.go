package store

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are always newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	Purpose  string // LLM events only
	Category string // session events only
}

// LLMRequestEventData captures a single LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls sharing a purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// Session actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// Session outcomes recorded with ActionEnd.
const (
	OutcomeCompleted = "completed"
	OutcomeDepleted  = "depleted"
	OutcomeAbandoned = "abandoned"
)

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID      string
	Category       string
	Action         string
	Questions      int
	AIQuestions    int
	Correct        int
	XPEarned       int
	HeartsLeft     int
	Outcome        string
	EnrichFailures int
	DurationSecs   int
}

// SessionEvent is a stored session event.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// CategoryStats aggregates finished sessions for one category.
type CategoryStats struct {
	Category  string
	Sessions  int
	Completed int
	Correct   int
	Questions int
	XPEarned  int
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	// GetLLMEvent returns nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)
	SessionStatsByCategory(ctx context.Context) ([]CategoryStats, error)
}

// where renders the shared QueryOpts filters. extra holds table-specific
// column filters keyed by column name; empty values are skipped.
func (o QueryOpts) where(extra map[string]string) (string, []any) {
	var conds []string
	var args []any

	if o.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, o.After)
	}
	if o.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, o.Before)
	}
	if !o.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, o.From.UnixMilli())
	}
	if !o.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, o.To.UnixMilli())
	}
	for col, v := range extra {
		if v != "" {
			conds = append(conds, col+" = ?")
			args = append(args, v)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// limit renders a LIMIT clause, or nothing for 0.
func (o QueryOpts) limit() string {
	if o.Limit <= 0 {
		return ""
	}
	return " LIMIT " + strconv.Itoa(o.Limit)
}
