package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchlens/go-opta-metrics/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'optametrics process <feed.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-11s  %-24s  %5s  %-22s  %s\n",
		"HASH", "DATE", "HOME", "SCORE", "AWAY", "EVENTS")
	fmt.Fprintf(os.Stdout, "%-14s  %-11s  %-24s  %5s  %-22s  %s\n",
		"──────────────", "───────────", "────────────────────────", "─────", "──────────────────────", "──────")
	for _, m := range matches {
		hash := m.FeedHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		fmt.Fprintf(os.Stdout, "%-14s  %-11s  %-24s  %5s  %-22s  %d\n",
			hash, m.MatchDate, m.HomeTeam, m.Score(), m.AwayTeam, m.EventCount)
	}
	return nil
}
