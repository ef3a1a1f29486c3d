package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloslator/EnglishVerbs/internal/fillblank"
	"github.com/carloslator/EnglishVerbs/internal/llm"
	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// failingEnricher never produces a question.
type failingEnricher struct{}

func (failingEnricher) FillBlank(context.Context, vocab.Verb, []vocab.Verb) quiz.Enrichment {
	return quiz.Enrichment{Err: errors.New("model unavailable")}
}

// echoEnricher builds a valid fill-blank question for any verb. When
// block is set it waits on it first, ignoring ctx; a non-empty only
// limits the wait to verbs of that category.
type echoEnricher struct {
	block chan struct{}
	only  vocab.Category
}

func (e echoEnricher) FillBlank(_ context.Context, v vocab.Verb, _ []vocab.Verb) quiz.Enrichment {
	if e.block != nil && (e.only == "" || e.only == v.Category) {
		<-e.block
	}
	return quiz.Enrichment{Question: &quiz.Question{
		Type:        quiz.TypeFillBlank,
		Verb:        v,
		Text:        "They ___ together.",
		Options:     []string{v.English, "zzz-a", "zzz-b", "zzz-c"},
		Answer:      v.English,
		Explanation: "because",
	}}
}

type options struct {
	enricher quiz.Enricher
	rate     float64
	timeout  time.Duration
	seed     uint64
	catalog  *vocab.Catalog
	failures *atomic.Int32
}

func newTestController(t *testing.T, o options) *Controller {
	t.Helper()

	qcfg := quiz.DefaultConfig()
	qcfg.EnrichProbability = o.rate
	if o.timeout > 0 {
		qcfg.EnrichTimeout = o.timeout
	}
	var opts []quiz.Option
	if o.enricher != nil {
		opts = append(opts, quiz.WithEnricher(o.enricher))
	}
	if o.failures != nil {
		opts = append(opts, quiz.WithFailureHook(func(vocab.Verb, error) { o.failures.Add(1) }))
	}
	if o.catalog == nil {
		o.catalog = vocab.Default()
	}
	if o.seed == 0 {
		o.seed = 42
	}

	b := quiz.NewBuilder(quiz.NewSeededSampler(o.seed), qcfg, opts...)
	return NewController(o.catalog, b, DefaultConfig())
}

// answer selects the right or a wrong option and checks it.
func answer(t *testing.T, c *Controller, user UserState, correct bool) UserState {
	t.Helper()
	v := c.View(user)
	require.NotNil(t, v.Question, "no current question")

	choice := v.Question.Answer
	if !correct {
		for _, o := range v.Question.Options {
			if o != v.Question.Answer {
				choice = o
				break
			}
		}
		require.NotEqual(t, v.Question.Answer, choice, "question has no wrong option")
	}

	require.True(t, c.SelectOption(choice))
	user, ok := c.CheckAnswer(user)
	require.True(t, ok)
	return user
}

func TestSession_AllCorrectWithFailingAI(t *testing.T) {
	var failures atomic.Int32
	c := newTestController(t, options{enricher: failingEnricher{}, rate: 1, failures: &failures})
	user := NewUserState(c.Config())

	user, ok := c.Start(context.Background(), vocab.CategoryMovement, user)
	require.True(t, ok)
	require.Equal(t, PhaseActive, c.Phase())

	v := c.View(user)
	require.Equal(t, 10, v.Total, "5 verbs × 2 deterministic questions")

	for i := range v.Total {
		user = answer(t, c, user, true)
		assert.Equal(t, (i+1)*10, c.View(user).SessionXP)
		user = c.Advance(user)
	}

	assert.Equal(t, PhaseFinished, c.Phase())
	v = c.View(user)
	assert.Equal(t, ScreenResult, v.Screen)
	assert.Equal(t, OutcomeCompleted, v.Outcome)
	assert.Equal(t, 100, v.SessionXP)
	assert.Equal(t, 3, user.Hearts)
	assert.Equal(t, 100, user.XP)
	assert.Equal(t, 2, user.Level)
	assert.Equal(t, 1, user.Streak)
	assert.Len(t, user.CompletedVerbs, 5)

	sum := c.Summary()
	assert.Equal(t, 100, sum.XPAwarded)
	assert.Equal(t, 5, sum.EnrichFailures)
	assert.Equal(t, 0, sum.AIQuestions)
	assert.Equal(t, 10, sum.Correct)
	assert.InDelta(t, 1.0, sum.Accuracy(), 1e-9)
	assert.Len(t, sum.NewlyCompleted, 5)
	assert.Equal(t, int32(5), failures.Load())
}

func TestSession_ThreeWrongEndsOnNextAdvance(t *testing.T) {
	c := newTestController(t, options{})
	user := NewUserState(c.Config())
	user.XP = 50
	user.Streak = 4

	user, ok := c.Start(context.Background(), vocab.CategoryGeneral, user)
	require.True(t, ok)
	total := c.View(user).Total

	for i := range 3 {
		user = answer(t, c, user, false)
		assert.Equal(t, 2-i, user.Hearts)
		if i < 2 {
			user = c.Advance(user)
			require.Equal(t, PhaseActive, c.Phase())
		}
	}
	require.Equal(t, 0, user.Hearts)
	require.Equal(t, PhaseActive, c.Phase(), "session ends on advance, not on check")

	user = c.Advance(user)
	assert.Equal(t, PhaseFinished, c.Phase())
	v := c.View(user)
	assert.Equal(t, OutcomeDepleted, v.Outcome)
	assert.Less(t, v.Index, total-1, "ended before the last question")
	assert.Equal(t, 50, user.XP, "session XP forfeited")
	assert.Equal(t, 0, user.Streak)
	assert.Equal(t, 0, c.Summary().XPAwarded)
}

func TestSession_CheckAnswerIsIdempotent(t *testing.T) {
	c := newTestController(t, options{})
	user, _ := c.Start(context.Background(), vocab.CategoryShopping, NewUserState(c.Config()))

	user = answer(t, c, user, false)
	require.Equal(t, 2, user.Hearts)

	again, ok := c.CheckAnswer(user)
	assert.False(t, ok)
	assert.Equal(t, 2, again.Hearts)

	assert.False(t, c.SelectOption(c.View(user).Question.Answer), "cannot re-answer a checked question")
	assert.False(t, c.View(user).IsCorrect)

	user = c.Advance(user)
	user = answer(t, c, user, true)
	_, ok = c.CheckAnswer(user)
	assert.False(t, ok)
	assert.Equal(t, 10, c.View(user).SessionXP)
}

func TestSession_InvalidCallsAreIgnored(t *testing.T) {
	c := newTestController(t, options{})
	user := NewUserState(c.Config())

	// Idle.
	assert.False(t, c.SelectOption("run"))
	got, ok := c.CheckAnswer(user)
	assert.False(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, user, c.Advance(user))
	assert.Equal(t, ScreenDashboard, c.View(user).Screen)

	user, _ = c.Start(context.Background(), vocab.CategoryEmotions, user)

	// No selection yet.
	_, ok = c.CheckAnswer(user)
	assert.False(t, ok)

	// Not checked yet.
	user = c.Advance(user)
	assert.Equal(t, 0, c.View(user).Index)

	// Unknown option.
	assert.False(t, c.SelectOption("not an option"))
	assert.Empty(t, c.View(user).Selected)

	// Changing the selection before checking is allowed.
	opts := c.View(user).Question.Options
	assert.True(t, c.SelectOption(opts[0]))
	assert.True(t, c.SelectOption(opts[1]))
	assert.Equal(t, opts[1], c.View(user).Selected)
}

func TestSession_AdvanceResetsSelection(t *testing.T) {
	c := newTestController(t, options{})
	user, _ := c.Start(context.Background(), vocab.CategoryDailyLife, NewUserState(c.Config()))

	user = answer(t, c, user, true)
	require.True(t, c.View(user).IsCorrect)
	user = c.Advance(user)

	v := c.View(user)
	assert.Equal(t, 1, v.Index)
	assert.Empty(t, v.Selected)
	assert.False(t, v.Checked)
	assert.False(t, v.IsCorrect)
	assert.InDelta(t, 0.1, v.Progress(), 1e-9)
}

func TestSession_AIQuestionsMixedIn(t *testing.T) {
	c := newTestController(t, options{enricher: echoEnricher{}, rate: 1})
	user, ok := c.Start(context.Background(), vocab.CategoryCommunication, NewUserState(c.Config()))
	require.True(t, ok)

	sum := c.Summary()
	assert.Equal(t, 15, sum.Questions)
	assert.Equal(t, 5, sum.AIQuestions)
	assert.Equal(t, 0, sum.EnrichFailures)

	perVerb := map[int]int{}
	fill := 0
	for range sum.Questions {
		q := c.View(user).Question
		perVerb[q.Verb.ID]++
		if q.IsAI() {
			fill++
		}
		user = answer(t, c, user, true)
		user = c.Advance(user)
	}
	assert.Equal(t, 5, fill)
	for id, n := range perVerb {
		assert.Equal(t, 3, n, "verb %d", id)
	}
	assert.Equal(t, 150, user.XP)
}

func TestSession_SmallCategory(t *testing.T) {
	cat := vocab.NewCatalog([]vocab.Verb{
		{ID: 1, English: "run", Spanish: "correr", Category: vocab.CategoryMovement},
		{ID: 2, English: "eat", Spanish: "comer", Category: vocab.CategoryMovement},
		{ID: 3, English: "sleep", Spanish: "dormir", Category: vocab.CategoryMovement},
	})
	c := newTestController(t, options{catalog: cat})

	p := c.Prepare(context.Background(), vocab.CategoryMovement)
	assert.Len(t, p.Verbs, 3)
	assert.Len(t, p.Questions, 6)
	for _, q := range p.Questions {
		assert.Len(t, q.Options, 3, "degraded to the available distractors")
		assert.NoError(t, quiz.CheckQuestion(q))
	}
}

func TestSession_EmptyCategoryFinishesImmediately(t *testing.T) {
	cat := vocab.NewCatalog([]vocab.Verb{
		{ID: 1, English: "run", Spanish: "correr", Category: vocab.CategoryMovement},
	})
	c := newTestController(t, options{catalog: cat})
	user := NewUserState(c.Config())
	user.XP = 30

	user, ok := c.Start(context.Background(), vocab.CategoryShopping, user)
	require.True(t, ok)
	assert.Equal(t, PhaseFinished, c.Phase())

	v := c.View(user)
	assert.Equal(t, OutcomeEmpty, v.Outcome)
	assert.Nil(t, v.Question)
	assert.Equal(t, 0, v.Total)
	assert.Equal(t, 30, user.XP)
}

func TestSession_StalePreparedIsIgnored(t *testing.T) {
	c := newTestController(t, options{})
	user := NewUserState(c.Config())

	first := c.Prepare(context.Background(), vocab.CategoryGeneral)
	second := c.Prepare(context.Background(), vocab.CategoryShopping)

	_, ok := c.Begin(first, user)
	assert.False(t, ok, "superseded by a later Prepare")
	assert.Equal(t, PhaseIdle, c.Phase())

	_, ok = c.Begin(second, user)
	require.True(t, ok)
	assert.Equal(t, vocab.CategoryShopping, c.View(user).Category)

	_, ok = c.Begin(second, user)
	assert.False(t, ok, "a Prepared starts at most once")

	_, ok = c.Begin(nil, user)
	assert.False(t, ok)
}

func TestSession_LateEnrichmentNeverTouchesNewSession(t *testing.T) {
	block := make(chan struct{})
	slow := newTestController(t, options{
		enricher: echoEnricher{block: block, only: vocab.CategoryMovement},
		rate:     1,
		timeout:  time.Hour,
	})
	user := NewUserState(slow.Config())

	done := make(chan *Prepared, 1)
	go func() { done <- slow.Prepare(context.Background(), vocab.CategoryMovement) }()

	// Wait for the slow Prepare to take its generation.
	require.Eventually(t, func() bool { return slow.gen.Load() >= 1 }, time.Second, time.Millisecond)

	// The learner goes back and picks another category meanwhile.
	slow.Abandon()
	fresh := slow.Prepare(context.Background(), vocab.CategoryShopping)
	user, ok := slow.Begin(fresh, user)
	require.True(t, ok)
	require.Equal(t, 15, slow.View(user).Total)

	close(block)

	late := <-done
	_, ok = slow.Begin(late, user)
	assert.False(t, ok)
	assert.Len(t, late.Questions, 15)
	assert.Equal(t, vocab.CategoryShopping, slow.View(user).Category)
	assert.Equal(t, 0, slow.View(user).Index)
	assert.Equal(t, fresh.ID, slow.Summary().SessionID)
}

func TestSession_EnrichmentJoinIsBounded(t *testing.T) {
	t.Run("provider honours context", func(t *testing.T) {
		mock := llm.NewMockProvider()
		for range 5 {
			mock.AddResponse(llm.MockResponse{Content: []byte(`{}`), Delay: time.Hour})
		}
		gen := fillblank.New(mock, fillblank.DefaultConfig(), nil)
		c := newTestController(t, options{enricher: gen, rate: 1, timeout: 50 * time.Millisecond})

		start := time.Now()
		p := c.Prepare(context.Background(), vocab.CategoryMovement)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Len(t, p.Questions, 10)
		assert.Equal(t, 5, p.AIRequested)
		assert.Equal(t, 5, p.EnrichFailures)
	})

	t.Run("enricher ignores context", func(t *testing.T) {
		block := make(chan struct{})
		t.Cleanup(func() { close(block) })
		c := newTestController(t, options{enricher: echoEnricher{block: block}, rate: 1, timeout: 50 * time.Millisecond})

		start := time.Now()
		p := c.Prepare(context.Background(), vocab.CategoryMovement)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Len(t, p.Questions, 10)
		assert.Equal(t, 0, p.AIQuestions)
	})
}

func TestSession_AbandonDiscards(t *testing.T) {
	c := newTestController(t, options{})
	user := NewUserState(c.Config())

	_, ok := c.Abandon()
	assert.False(t, ok, "nothing to abandon")

	user, _ = c.Start(context.Background(), vocab.CategoryGeneral, user)
	user = answer(t, c, user, true)

	sum, ok := c.Abandon()
	require.True(t, ok)
	assert.Equal(t, OutcomeAbandoned, sum.Outcome)
	assert.Equal(t, 10, sum.SessionXP)
	assert.Equal(t, 0, sum.XPAwarded)
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, 0, user.XP)
	assert.Equal(t, Summary{}, c.Summary())

	// A finished session is abandoned with its own outcome.
	user, _ = c.Start(context.Background(), vocab.CategoryGeneral, user)
	for range 3 {
		user = answer(t, c, user, false)
		user = c.Advance(user)
	}
	sum, _ = c.Abandon()
	assert.Equal(t, OutcomeDepleted, sum.Outcome)
}

func TestSession_CompletedVerbsNeedEveryQuestionRight(t *testing.T) {
	c := newTestController(t, options{})
	user, _ := c.Start(context.Background(), vocab.CategoryMovement, NewUserState(c.Config()))

	missed := c.View(user).Question.Verb.ID
	user = answer(t, c, user, false)
	user = c.Advance(user)
	for c.Phase() == PhaseActive {
		user = answer(t, c, user, true)
		user = c.Advance(user)
	}

	assert.Equal(t, OutcomeCompleted, c.View(user).Outcome)
	assert.Equal(t, 2, user.Hearts)
	assert.Equal(t, 90, user.XP)
	assert.Len(t, user.CompletedVerbs, 4)
	assert.False(t, user.CompletedVerbs[missed])
}

func TestSession_HeartsResetEachSession(t *testing.T) {
	c := newTestController(t, options{})
	user := NewUserState(c.Config())

	user, _ = c.Start(context.Background(), vocab.CategoryGeneral, user)
	user = answer(t, c, user, false)
	require.Equal(t, 2, user.Hearts)

	user, ok := c.Start(context.Background(), vocab.CategoryGeneral, user)
	require.True(t, ok)
	assert.Equal(t, 3, user.Hearts)
	assert.Equal(t, 0, c.View(user).SessionXP)
	assert.Equal(t, 0, c.View(user).Index)
}

func TestSession_SeededRunsAreReproducible(t *testing.T) {
	texts := func() []string {
		c := newTestController(t, options{seed: 7})
		p := c.Prepare(context.Background(), vocab.CategoryGeneral)
		var out []string
		for _, q := range p.Questions {
			out = append(out, q.Text)
		}
		return out
	}
	assert.Equal(t, texts(), texts())
}

func TestSession_UserStateNotAliased(t *testing.T) {
	c := newTestController(t, options{})
	before := NewUserState(c.Config())

	after, _ := c.Start(context.Background(), vocab.CategoryMovement, before)
	for c.Phase() == PhaseActive {
		after = answer(t, c, after, true)
		after = c.Advance(after)
	}

	assert.Empty(t, before.CompletedVerbs)
	assert.Len(t, after.CompletedVerbs, 5)
}
