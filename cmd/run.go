package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/carloslator/EnglishVerbs/internal/app"
	"github.com/carloslator/EnglishVerbs/internal/fillblank"
	"github.com/carloslator/EnglishVerbs/internal/llm"
	"github.com/carloslator/EnglishVerbs/internal/quiz"
	"github.com/carloslator/EnglishVerbs/internal/screen"
	"github.com/carloslator/EnglishVerbs/internal/session"
	"github.com/carloslator/EnglishVerbs/internal/speech"
	"github.com/carloslator/EnglishVerbs/internal/store"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, f playFlags) error {
	ctx := cmd.Context()

	var category vocab.Category
	if f.category != "" {
		c, err := vocab.ParseCategory(f.category)
		if err != nil {
			return err
		}
		category = c
	}

	quizCfg, err := quiz.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("quiz config: %w", err)
	}
	if f.rateSet {
		quizCfg.EnrichProbability = f.aiRate
	}
	if f.aiTimeout > 0 {
		quizCfg.EnrichTimeout = f.aiTimeout
	}
	if err := quizCfg.Validate(); err != nil {
		return fmt.Errorf("quiz config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	sampler := quiz.NewSampler(nil)
	if f.seedSet {
		sampler = quiz.NewSeededSampler(f.seed)
	}

	var opts []quiz.Option
	var model string
	if !f.noAI {
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			// Translation questions only.
		case err != nil:
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI questions will be unavailable.")
		default:
			opts = append(opts, quiz.WithEnricher(fillblank.New(provider, fillblank.DefaultConfig(), sampler)))
			model = provider.ModelID()
		}
	}

	speaker, err := speech.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech disabled:", err)
	}

	controller := session.NewController(vocab.Default(), quiz.NewBuilder(sampler, quizCfg, opts...), session.DefaultConfig())

	user, err := app.Run(app.Options{
		Env: screen.Env{
			Controller: controller,
			Speaker:    speaker,
			Events:     eventRepo,
			AIModel:    model,
		},
		Category: category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d XP · level %d · %d verbs completed\n", user.XP, user.Level, len(user.CompletedVerbs))
	return nil
}
