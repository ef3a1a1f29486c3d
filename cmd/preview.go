package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carloslator/EnglishVerbs/internal/fillblank"
	"github.com/carloslator/EnglishVerbs/internal/llm"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview AI fill-in-the-blank questions for a verb (no database)",
	Long: `Generate and interactively answer fill-in-the-blank questions for one verb.

This is a stateless developer tool: no database, no XP, no events.
Useful for judging question quality across providers and models.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("verb", "", "English verb or catalog ID (required)")
	previewCmd.Flags().Int("count", 3, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("verb")
}

func runPreview(cmd *cobra.Command, args []string) error {
	verbVal, _ := cmd.Flags().GetString("verb")
	count, _ := cmd.Flags().GetInt("count")

	catalog := vocab.Default()
	verb, err := resolveVerb(catalog, verbVal)
	if err != nil {
		return err
	}

	// No EventRepo: logging skipped.
	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := fillblank.New(provider, fillblank.DefaultConfig(), nil)
	pool := catalog.ByCategory(verb.Category)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Verb: %s (%s, %s) via %s\n", verb.English, verb.Spanish, verb.Category.DisplayName(), provider.ModelID())
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, verb, pool)
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Text)
		for j, o := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, o)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Options) {
			answer = q.Options[n-1]
		}
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if q.IsCorrect(answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

// resolveVerb finds a verb by catalog ID first, then by English form.
func resolveVerb(c *vocab.Catalog, val string) (vocab.Verb, error) {
	if id, err := strconv.Atoi(val); err == nil {
		return c.Get(id)
	}
	if v, ok := c.FindEnglish(strings.ToLower(strings.TrimSpace(val))); ok {
		return v, nil
	}
	return vocab.Verb{}, fmt.Errorf("verb %q not found in catalog", val)
}
