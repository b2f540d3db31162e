package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matchlens/go-opta-metrics/internal/feed"
	"github.com/matchlens/go-opta-metrics/internal/mapping"
	"github.com/matchlens/go-opta-metrics/internal/pipeline"
	"github.com/matchlens/go-opta-metrics/internal/report"
	"github.com/matchlens/go-opta-metrics/internal/storage"
)

var (
	eventTypesPath string
	qualifiersPath string
	processTeam    string
)

var processCmd = &cobra.Command{
	Use:   "process <feed.json>",
	Short: "Process a match event feed and store metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&eventTypesPath, "event-types", "", "path to event type CSV mapping")
	processCmd.Flags().StringVar(&qualifiersPath, "qualifiers", "", "path to qualifier JSON mapping")
	processCmd.Flags().StringVar(&processTeam, "team", "", "focus team for the report (default home side)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	feedPath := args[0]

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(os.Stdout, "Processing %s...\n", feedPath)
	root, body, err := feed.Load(feedPath)
	if err != nil {
		return fmt.Errorf("load feed: %w", err)
	}
	hash := feed.Hash(body)

	exists, err := db.MatchExists(hash)
	if err != nil {
		return fmt.Errorf("check match: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Feed %s already stored, showing cached results.\n\n", hash[:12])
		return showByHash(db, hash, processTeam)
	}

	events := mapping.LoadEventTypes(eventTypesPath, log)
	qualifiers := mapping.LoadQualifiers(qualifiersPath, log)

	res, err := pipeline.Run(root, hash, events, qualifiers, cfg, log)
	if err != nil {
		return fmt.Errorf("process feed: %w", err)
	}

	if err := db.InsertMatch(res.Summary); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	if err := db.InsertEvents(hash, res.Events); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	for _, set := range res.Sequences {
		if err := db.InsertSequences(hash, set.Kind, set.Team, set.Rows); err != nil {
			return fmt.Errorf("insert %s sequences: %w", set.Kind, err)
		}
	}
	if err := db.InsertPlayerStats(hash, res.Players); err != nil {
		return fmt.Errorf("insert player stats: %w", err)
	}

	focus := processTeam
	if focus == "" {
		focus = res.Home
	}
	report.PrintMatchSummary(os.Stdout, res.Summary)
	report.PrintPlayerTable(os.Stdout, res.Players, focus)
	renderTeamReport(res, focus)
	return nil
}
