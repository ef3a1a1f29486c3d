package cmd

import (
	"fmt"

	"github.com/carloslator/EnglishVerbs/internal/store"
	"github.com/carloslator/EnglishVerbs/internal/vocab"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sinceOpts(cmd)
		if c, _ := cmd.Flags().GetString("category"); c != "" {
			cat, err := vocab.ParseCategory(c)
			if err != nil {
				return err
			}
			opts.Category = string(cat)
		}
		// --limit counts end events, which are filtered below.
		opts.Limit = 0

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		events, err := s.EventRepo().QuerySessionEvents(ctx, opts)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		var ended []store.SessionEvent
		for _, e := range events {
			if e.Action != store.ActionEnd {
				continue
			}
			if limit > 0 && len(ended) == limit {
				break
			}
			ended = append(ended, e)
		}
		if len(ended) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-10s  %7s  %4s  %5s  %3s  %6s\n",
			"Time", "Category", "Outcome", "Correct", "XP", "Lives", "AI", "Secs")
		fmt.Println(rule(88))
		for _, e := range ended {
			fmt.Printf("%-19s  %-20s  %-10s  %3d/%-3d  %4d  %5d  %3d  %6d\n",
				formatTime(e.Timestamp),
				truncate(vocab.Category(e.Category).DisplayName(), 20),
				e.Outcome,
				e.Correct, e.Questions,
				e.XPEarned, e.HeartsLeft, e.AIQuestions, e.DurationSecs)
		}

		totals, err := s.EventRepo().SessionStatsByCategory(ctx)
		if err != nil {
			return fmt.Errorf("query category stats: %w", err)
		}
		if len(totals) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("By Category")
		fmt.Println(rule(64))
		fmt.Printf("%-20s  %8s  %9s  %8s  %8s\n", "Category", "Sessions", "Completed", "Accuracy", "XP")
		fmt.Println(rule(64))
		for _, t := range totals {
			acc := 0.0
			if t.Questions > 0 {
				acc = float64(t.Correct) / float64(t.Questions) * 100
			}
			fmt.Printf("%-20s  %8d  %9d  %7.0f%%  %8d\n",
				truncate(vocab.Category(t.Category).DisplayName(), 20),
				t.Sessions, t.Completed, acc, t.XPEarned)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	historyCmd.Flags().StringP("category", "c", "", "Only sessions in this category")
	historyCmd.Flags().Duration("since", 0, "Only sessions newer than this (e.g. 168h)")
}
