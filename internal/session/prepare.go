package session

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Prepared is a fully built question list waiting to be started with
// Begin. It is stamped with the controller generation current when
// preparation began.
type Prepared struct {
	ID        string
	Category  vocab.Category
	Verbs     []vocab.Verb
	Questions []quiz.Question

	// AIRequested counts verbs that won the AI trigger; AIQuestions how
	// many of those produced a question in time.
	AIRequested    int
	AIQuestions    int
	EnrichFailures int

	generation uint64
}

// Prepare draws up to VerbsPerSession verbs from category, builds their
// questions and shuffles the result. AI requests are dispatched together
// and joined within the builder's EnrichTimeout; anything later is
// dropped. Prepare touches no session state and may run off the UI
// goroutine.
func (c *Controller) Prepare(ctx context.Context, category vocab.Category) *Prepared {
	p := &Prepared{
		ID:         uuid.NewString(),
		Category:   category,
		generation: c.gen.Add(1),
	}

	sampler := c.builder.Sampler()
	pool := c.catalog.All()
	p.Verbs = quiz.Sample(sampler, c.catalog.ByCategory(category), c.cfg.VerbsPerSession)

	var pending []vocab.Verb
	for _, v := range p.Verbs {
		built := c.builder.Build(v, pool)
		p.Questions = append(p.Questions, built.Questions...)
		if built.Enrich {
			pending = append(pending, v)
		}
	}

	extra := c.enrich(ctx, pending, pool)
	p.AIRequested = len(pending)
	p.AIQuestions = len(extra)
	p.EnrichFailures = len(pending) - len(extra)
	p.Questions = append(p.Questions, extra...)

	quiz.ShuffleSlice(sampler, p.Questions)
	return p
}

// enrich requests one AI question per verb concurrently and returns the
// ones that arrive before the timeout.
func (c *Controller) enrich(ctx context.Context, verbs, pool []vocab.Verb) []quiz.Question {
	if len(verbs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.builder.Config().EnrichTimeout)
	defer cancel()

	// Buffered so late senders never block after the join gives up.
	results := make(chan *quiz.Question, len(verbs))

	var g errgroup.Group
	if n := c.cfg.MaxConcurrentEnrich; n > 0 {
		g.SetLimit(n)
	}
	go func() {
		for _, v := range verbs {
			g.Go(func() error {
				q, err := c.builder.Enrich(ctx, v, pool)
				if err != nil {
					q = nil
				}
				results <- q
				return nil
			})
		}
		g.Wait()
	}()

	var out []quiz.Question
	for range verbs {
		select {
		case q := <-results:
			if q != nil {
				out = append(out, *q)
			}
		case <-ctx.Done():
			return out
		}
	}
	return out
}
