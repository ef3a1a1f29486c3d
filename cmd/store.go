package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/carloslator/EnglishVerbs/internal/store"
	"github.com/spf13/cobra"
)

// openStore opens the database the command's --db flag resolves to.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// sinceOpts builds QueryOpts from the shared --limit and --since flags.
func sinceOpts(cmd *cobra.Command) store.QueryOpts {
	limit, _ := cmd.Flags().GetInt("limit")
	opts := store.QueryOpts{Limit: limit}
	if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
		opts.From = time.Now().Add(-since)
	}
	return opts
}

func rule(width int) string {
	return strings.Repeat("─", width)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
