package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// playFlags are the session overrides accepted by play. Zero values
// leave the environment configuration in place.
type playFlags struct {
	category  string
	aiRate    float64
	aiTimeout time.Duration
	seed      uint64
	noAI      bool

	rateSet bool
	seedSet bool
}

func defaultPlayFlags() playFlags {
	return playFlags{}
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	Long: `Open the dashboard, or jump straight into a category with --category.

Categories: general, communication, emotions, movement, daily-life, shopping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := defaultPlayFlags()
		f.category, _ = cmd.Flags().GetString("category")
		f.aiRate, _ = cmd.Flags().GetFloat64("ai-rate")
		f.aiTimeout, _ = cmd.Flags().GetDuration("ai-timeout")
		f.seed, _ = cmd.Flags().GetUint64("seed")
		f.noAI, _ = cmd.Flags().GetBool("no-ai")
		f.rateSet = cmd.Flags().Changed("ai-rate")
		f.seedSet = cmd.Flags().Changed("seed")
		return runApp(cmd, f)
	},
}

func init() {
	playCmd.Flags().StringP("category", "c", "", "Start a session in this category")
	playCmd.Flags().Float64("ai-rate", 0, "Chance per verb of an extra AI question, 0 to 1 (overrides VERBS_AI_PROBABILITY)")
	playCmd.Flags().Duration("ai-timeout", 0, "Time limit for each AI question (overrides VERBS_AI_TIMEOUT)")
	playCmd.Flags().Uint64("seed", 0, "Seed the question sampler for a reproducible session")
	playCmd.Flags().Bool("no-ai", false, "Disable AI questions even when an API key is set")
}
