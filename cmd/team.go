package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matchlens/go-opta-metrics/internal/model"
	"github.com/matchlens/go-opta-metrics/internal/report"
	"github.com/matchlens/go-opta-metrics/internal/storage"
)

var teamSince string

var teamCmd = &cobra.Command{
	Use:   "team <name>",
	Short: "Aggregate a team's stored matches",
	Long:  "Summarize results, sequence outcomes, and player totals for one team across every stored match.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamSince, "since", "", "only include matches on or after this date (YYYY-MM-DD)")
}

func runTeam(cmd *cobra.Command, args []string) error {
	name := args[0]

	since := time.Time{}
	if teamSince != "" {
		var err error
		since, err = time.Parse("2006-01-02", teamSince)
		if err != nil {
			return fmt.Errorf("parse --since: %w", err)
		}
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.TeamMatches(name, since)
	if err != nil {
		return fmt.Errorf("query matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stdout, "No stored matches for %q.\n", name)
		return nil
	}

	hashes := make([]string, len(matches))
	for i, m := range matches {
		hashes[i] = m.FeedHash
	}

	rec, err := db.TeamRecordFor(name, hashes)
	if err != nil {
		return fmt.Errorf("aggregate record: %w", err)
	}
	report.PrintTeamRecord(os.Stdout, rec)

	for _, kind := range []struct {
		kind  model.SequenceKind
		title string
	}{
		{model.SequenceShot, "Shot sequence outcomes"},
		{model.SequenceDefensiveTransition, "Defensive transition outcomes"},
		{model.SequenceOffensiveTransition, "Offensive transition outcomes"},
		{model.SequenceSetPiece, "Set piece outcomes"},
		{model.SequenceBuildupPhase, "Buildup phase outcomes"},
	} {
		counts, err := db.TeamSequenceOutcomes(name, kind.kind, hashes)
		if err != nil {
			return fmt.Errorf("aggregate %s: %w", kind.kind, err)
		}
		report.PrintOutcomeCounts(os.Stdout, kind.title, counts)
	}

	totals, err := db.TeamPlayerTotals(name, hashes)
	if err != nil {
		return fmt.Errorf("aggregate players: %w", err)
	}
	report.PrintTeamPlayerTotals(os.Stdout, totals)
	return nil
}
