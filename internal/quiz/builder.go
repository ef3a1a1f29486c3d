package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// ErrNoEnricher is returned by Enrich when the Builder has no Enricher.
var ErrNoEnricher = errors.New("no AI question source configured")

// Enrichment is the outcome of one Enricher call: either a question or
// the reason there is none.
type Enrichment struct {
	Question *Question
	Err      error
}

// Enricher produces an extra, context-based question for a verb.
type Enricher interface {
	FillBlank(ctx context.Context, verb vocab.Verb, pool []vocab.Verb) Enrichment
}

// FailureHook observes discarded enrichment failures.
type FailureHook func(verb vocab.Verb, err error)

// Builder turns verbs into questions.
type Builder struct {
	sampler   *Sampler
	cfg       Config
	enricher  Enricher
	onFailure FailureHook
}

// Option configures a Builder.
type Option func(*Builder)

// WithEnricher attaches an AI question source.
func WithEnricher(e Enricher) Option {
	return func(b *Builder) { b.enricher = e }
}

// WithFailureHook sets the observer for enrichment failures.
func WithFailureHook(h FailureHook) Option {
	return func(b *Builder) { b.onFailure = h }
}

// NewBuilder creates a Builder drawing randomness from sampler.
func NewBuilder(sampler *Sampler, cfg Config, opts ...Option) *Builder {
	b := &Builder{sampler: sampler, cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Sampler returns the Builder's random source.
func (b *Builder) Sampler() *Sampler {
	return b.sampler
}

// Config returns the Builder's configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// CanEnrich reports whether an Enricher is attached.
func (b *Builder) CanEnrich() bool {
	return b.enricher != nil
}

// Built holds the deterministic questions for a verb and whether an
// AI question should be requested for it as well.
type Built struct {
	Verb      vocab.Verb
	Questions []Question
	Enrich    bool
}

// Build produces the two translation questions for verb. pool supplies
// distractors and is usually the whole catalog.
func (b *Builder) Build(verb vocab.Verb, pool []vocab.Verb) Built {
	toSpanish := Question{
		Type:    TypeTranslateToSpanish,
		Verb:    verb,
		Text:    fmt.Sprintf("TRANSLATE: %q", verb.English),
		Answer:  verb.Spanish,
		Options: b.options(verb, pool, vocab.FieldSpanish),
	}
	toEnglish := Question{
		Type:    TypeTranslateToEnglish,
		Verb:    verb,
		Text:    fmt.Sprintf("ENGLISH FOR: %q", verb.Spanish),
		Answer:  verb.English,
		Options: b.options(verb, pool, vocab.FieldEnglish),
	}

	return Built{
		Verb:      verb,
		Questions: []Question{toSpanish, toEnglish},
		Enrich:    b.enricher != nil && b.sampler.Chance(b.cfg.EnrichProbability),
	}
}

// options returns the shuffled choices for verb in the given field.
// Repeated strings are dropped so every option is distinct.
func (b *Builder) options(verb vocab.Verb, pool []vocab.Verb, field vocab.Field) []string {
	answer := verb.Text(field)
	distractors := b.sampler.Distractors(verb, pool, b.cfg.DistractorCount, field)

	opts := make([]string, 0, len(distractors)+1)
	seen := map[string]bool{answer: true}
	for _, d := range distractors {
		if seen[d] {
			continue
		}
		seen[d] = true
		opts = append(opts, d)
	}
	opts = append(opts, answer)

	ShuffleSlice(b.sampler, opts)
	return opts
}

// Enrich asks the Enricher for one fill-in-the-blank question. Any
// failure is passed to the failure hook and returned; callers drop it.
func (b *Builder) Enrich(ctx context.Context, verb vocab.Verb, pool []vocab.Verb) (*Question, error) {
	q, err := b.enrich(ctx, verb, pool)
	if err != nil && b.onFailure != nil {
		b.onFailure(verb, err)
	}
	return q, err
}

func (b *Builder) enrich(ctx context.Context, verb vocab.Verb, pool []vocab.Verb) (*Question, error) {
	if b.enricher == nil {
		return nil, ErrNoEnricher
	}

	res := b.enricher.FillBlank(ctx, verb, pool)
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Question == nil {
		return nil, fmt.Errorf("AI question for %q: empty result", verb.English)
	}
	if err := CheckQuestion(*res.Question); err != nil {
		return nil, fmt.Errorf("AI question for %q: %w", verb.English, err)
	}
	return res.Question, nil
}

// BuildQuestions is the synchronous form of Build plus Enrich: it
// returns two or three questions, waiting at most EnrichTimeout for
// the AI question.
func (b *Builder) BuildQuestions(ctx context.Context, verb vocab.Verb, pool []vocab.Verb) []Question {
	built := b.Build(verb, pool)
	if !built.Enrich {
		return built.Questions
	}

	ctx, cancel := context.WithTimeout(ctx, b.cfg.EnrichTimeout)
	defer cancel()

	// The Enricher may ignore ctx; never wait past the deadline.
	done := make(chan *Question, 1)
	go func() {
		q, err := b.Enrich(ctx, verb, pool)
		if err != nil {
			q = nil
		}
		done <- q
	}()

	select {
	case q := <-done:
		if q != nil {
			return append(built.Questions, *q)
		}
	case <-ctx.Done():
	}
	return built.Questions
}
