package session

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Controller runs one quiz session at a time. Apart from Prepare, its
// methods must be called from a single goroutine. Calls that do not fit
// the current phase are ignored.
type Controller struct {
	catalog *vocab.Catalog
	builder *quiz.Builder
	cfg     Config
	now     func() time.Time

	// gen identifies the only Prepared result Begin will accept.
	gen atomic.Uint64

	phase Phase
	s     *state
}

// state is the live session.
type state struct {
	prepared  *Prepared
	index     int
	sessionXP int
	selected  string
	checked   bool
	correct   bool

	answered   int
	right      int
	hearts     int
	awardedXP  int
	outcome    Outcome
	newlyDone  []int
	verbTotals map[int]int
	verbRight  map[int]int

	started time.Time
	ended   time.Time
}

// NewController creates an idle controller.
func NewController(catalog *vocab.Catalog, builder *quiz.Builder, cfg Config) *Controller {
	return &Controller{
		catalog: catalog,
		builder: builder,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Config returns the session rules.
func (c *Controller) Config() Config {
	return c.cfg
}

// Catalog returns the verb catalog sessions draw from.
func (c *Controller) Catalog() *vocab.Catalog {
	return c.catalog
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Begin starts the session in p and returns the updated user. It
// reports false, leaving everything unchanged, when p is nil, was
// superseded by a later Prepare or Abandon, or was already started.
func (c *Controller) Begin(p *Prepared, user UserState) (UserState, bool) {
	if p == nil || !c.gen.CompareAndSwap(p.generation, p.generation+1) {
		return user, false
	}

	s := &state{
		prepared:   p,
		verbTotals: make(map[int]int),
		verbRight:  make(map[int]int),
		started:    c.now(),
	}
	for _, q := range p.Questions {
		s.verbTotals[q.Verb.ID]++
	}

	user = user.Clone()
	user.Hearts = c.cfg.MaxHearts
	s.hearts = user.Hearts

	c.s = s
	c.phase = PhaseActive
	if len(p.Questions) == 0 {
		c.finish(OutcomeEmpty)
	}
	return user, true
}

// Start prepares and begins a session in one call.
func (c *Controller) Start(ctx context.Context, category vocab.Category, user UserState) (UserState, bool) {
	return c.Begin(c.Prepare(ctx, category), user)
}

// SelectOption records the learner's choice for the current question.
// It reports false when not answering or when option is not offered.
func (c *Controller) SelectOption(option string) bool {
	if c.phase != PhaseActive || c.s.checked {
		return false
	}
	if !slices.Contains(c.s.current().Options, option) {
		return false
	}
	c.s.selected = option
	return true
}

// CheckAnswer grades the selected option: a correct answer earns
// XPPerCorrect session XP, a wrong one costs a heart. A question is
// checked at most once.
func (c *Controller) CheckAnswer(user UserState) (UserState, bool) {
	if c.phase != PhaseActive || c.s.selected == "" || c.s.checked {
		return user, false
	}

	q := c.s.current()
	c.s.correct = q.IsCorrect(c.s.selected)
	c.s.checked = true
	c.s.answered++

	if c.s.correct {
		c.s.sessionXP += c.cfg.XPPerCorrect
		c.s.right++
		c.s.verbRight[q.Verb.ID]++
	} else {
		user.Hearts = max(0, min(user.Hearts, c.cfg.MaxHearts)-1)
	}
	c.s.hearts = user.Hearts
	return user, true
}

// Advance moves past a checked question. With no hearts left the
// session ends and its XP is forfeited. After the last question the
// session XP is credited and the session ends. Otherwise the next
// question is shown.
func (c *Controller) Advance(user UserState) UserState {
	if c.phase != PhaseActive || !c.s.checked {
		return user
	}

	switch {
	case user.Hearts <= 0:
		user.Streak = 0
		c.finish(OutcomeDepleted)
	case c.s.index == len(c.s.prepared.Questions)-1:
		user = c.credit(user)
		c.finish(OutcomeCompleted)
	default:
		c.s.index++
		c.s.selected = ""
		c.s.checked = false
		c.s.correct = false
	}
	return user
}

// credit applies a completed session to user.
func (c *Controller) credit(user UserState) UserState {
	user = user.Clone()
	user.XP += c.s.sessionXP
	user.Level = LevelFor(user.XP, c.cfg.XPPerLevel)
	user.Streak++
	c.s.awardedXP = c.s.sessionXP

	for _, v := range c.s.prepared.Verbs {
		total := c.s.verbTotals[v.ID]
		if total == 0 || c.s.verbRight[v.ID] != total || user.CompletedVerbs[v.ID] {
			continue
		}
		user.CompletedVerbs[v.ID] = true
		c.s.newlyDone = append(c.s.newlyDone, v.ID)
	}
	return user
}

func (c *Controller) finish(o Outcome) {
	c.s.outcome = o
	c.s.ended = c.now()
	c.phase = PhaseFinished
}

// Abandon discards the current session, returns to Idle and invalidates
// any Prepared still in flight. The summary of the discarded session is
// returned with ok false when there was none.
func (c *Controller) Abandon() (Summary, bool) {
	c.gen.Add(1)
	if c.s == nil {
		c.phase = PhaseIdle
		return Summary{}, false
	}

	if c.phase == PhaseActive {
		c.finish(OutcomeAbandoned)
	}
	sum := c.Summary()
	c.s = nil
	c.phase = PhaseIdle
	return sum, true
}

func (s *state) current() quiz.Question {
	return s.prepared.Questions[s.index]
}
