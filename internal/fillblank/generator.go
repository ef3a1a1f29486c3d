package fillblank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carloslator/EnglishVerbs/internal/llm"
	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
)

// Purpose tags fill-blank requests in the event log.
const Purpose = "fill-blank"

// ErrNoProvider is returned when no language model is configured.
var ErrNoProvider = errors.New("fill-blank: no LLM provider configured")

// Generator turns one model response into a fill-in-the-blank question.
// It makes a single attempt per call.
type Generator struct {
	provider llm.Provider
	config   Config
	sampler  *quiz.Sampler
}

var _ quiz.Enricher = (*Generator)(nil)

// New creates a Generator. sampler shuffles options and picks distractor
// suggestions; a nil sampler gets a randomly seeded one. A Config with no
// validators uses the default chain.
func New(provider llm.Provider, cfg Config, sampler *quiz.Sampler) *Generator {
	if len(cfg.Validators) == 0 {
		cfg.Validators = DefaultConfig().Validators
	}
	if sampler == nil {
		sampler = quiz.NewSampler(nil)
	}
	return &Generator{provider: provider, config: cfg, sampler: sampler}
}

// FillBlank implements quiz.Enricher.
func (g *Generator) FillBlank(ctx context.Context, verb vocab.Verb, pool []vocab.Verb) quiz.Enrichment {
	q, err := g.Generate(ctx, verb, pool)
	return quiz.Enrichment{Question: q, Err: err}
}

// Generate requests and validates one question for verb.
func (g *Generator) Generate(ctx context.Context, verb vocab.Verb, pool []vocab.Verb) (*quiz.Question, error) {
	if g.provider == nil {
		return nil, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	var suggestions []string
	if g.config.Suggestions > 0 {
		suggestions = g.sampler.Distractors(verb, pool, g.config.Suggestions, vocab.FieldEnglish)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(verb, suggestions)},
		},
		Schema:      ItemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("fill-blank for %q: %w", verb.English, err)
	}

	var item Item
	if err := json.Unmarshal(resp.Content, &item); err != nil {
		return nil, fmt.Errorf("fill-blank for %q: parse response: %w", verb.English, err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&item, verb); verr != nil {
			return nil, verr
		}
	}

	return g.question(verb, item), nil
}

func (g *Generator) question(verb vocab.Verb, item Item) *quiz.Question {
	options := append([]string{item.Answer}, item.Distractors...)
	quiz.ShuffleSlice(g.sampler, options)

	return &quiz.Question{
		Type:        quiz.TypeFillBlank,
		Verb:        verb,
		Text:        item.Sentence,
		Options:     options,
		Answer:      item.Answer,
		Explanation: item.Explanation,
	}
}
