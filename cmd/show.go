package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchlens/go-opta-metrics/internal/aggregate"
	"github.com/matchlens/go-opta-metrics/internal/model"
	"github.com/matchlens/go-opta-metrics/internal/pipeline"
	"github.com/matchlens/go-opta-metrics/internal/report"
	"github.com/matchlens/go-opta-metrics/internal/storage"
)

var showTeam string

var showCmd = &cobra.Command{
	Use:   "show <hash-prefix>",
	Short: "Show stored match metrics by hash prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showTeam, "team", "", "focus team for the report (default home side)")
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	return showByHash(db, prefix, showTeam)
}

// showByHash renders the full report for a stored match. Sequences come
// from the store; positional aggregates are recomputed from the stored
// event table.
func showByHash(db *storage.DB, prefix, team string) error {
	summary, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if summary == nil {
		fmt.Fprintf(os.Stderr, "No match found with hash prefix %q\n", prefix)
		return nil
	}

	events, err := db.GetEvents(summary.FeedHash)
	if err != nil {
		return fmt.Errorf("get events: %w", err)
	}
	players, err := db.GetPlayerStats(summary.FeedHash)
	if err != nil {
		return fmt.Errorf("get player stats: %w", err)
	}

	focus := team
	if focus == "" {
		focus = summary.HomeTeam
	}

	res := &pipeline.Result{
		Summary: *summary,
		Home:    summary.HomeTeam,
		Away:    summary.AwayTeam,
		Events:  events,
		Players: players,
	}
	for _, kind := range []model.SequenceKind{
		model.SequenceShot, model.SequenceBuildup,
		model.SequenceDefensiveTransition, model.SequenceOffensiveTransition,
		model.SequenceSetPiece, model.SequenceBuildupPhase,
	} {
		rows, err := db.GetSequences(summary.FeedHash, kind, focus)
		if err != nil {
			return fmt.Errorf("get %s sequences: %w", kind, err)
		}
		res.Sequences = append(res.Sequences, pipeline.SequenceSet{Kind: kind, Team: focus, Rows: rows})
	}

	report.PrintMatchSummary(os.Stdout, *summary)
	report.PrintPlayerTable(os.Stdout, players, focus)
	renderTeamReport(res, focus)
	return nil
}

// renderTeamReport prints the sequence and positional breakdown for one
// team of a processed match.
func renderTeamReport(res *pipeline.Result, focus string) {
	opp := res.Away
	if focus == res.Away {
		opp = res.Home
	}

	report.PrintSequenceTable(os.Stdout, focus+" shot sequences", res.Rows(model.SequenceShot, focus))
	report.PrintSequenceTable(os.Stdout, focus+" buildups from the back", res.Rows(model.SequenceBuildup, focus))
	report.PrintSequenceTable(os.Stdout, focus+" defensive transitions", res.Rows(model.SequenceDefensiveTransition, focus))
	report.PrintTransitionSummary(os.Stdout, focus+" defensive transition", res.Rows(model.SequenceDefensiveTransition, focus))
	report.PrintSequenceTable(os.Stdout, focus+" offensive transitions", res.Rows(model.SequenceOffensiveTransition, focus))
	report.PrintTransitionSummary(os.Stdout, focus+" offensive transition", res.Rows(model.SequenceOffensiveTransition, focus))
	report.PrintSequenceTable(os.Stdout, focus+" set pieces", res.Rows(model.SequenceSetPiece, focus))
	report.PrintSequenceTable(os.Stdout, focus+" buildup phases", res.Rows(model.SequenceBuildupPhase, focus))

	rule := pipeline.ProgressiveRule(cfg)
	passes := aggregate.Passes(res.Events, rule)
	nodes, links := aggregate.PassNetwork(passes, focus)
	report.PrintPassNetwork(os.Stdout, focus, nodes, links, 15)
	report.PrintProgressiveZones(os.Stdout, focus, aggregate.ProgressiveZoneCounts(res.Events, focus, rule))

	report.PrintPPDATable(os.Stdout, aggregate.PPDA(res.Events, focus, opp,
		cfg.Defense.PPDAZoneX, cfg.Defense.PPDAPassZoneX))
	report.PrintDefensiveBlock(os.Stdout, focus, aggregate.DefensiveBlock(res.Events, focus))
	report.PrintHighTurnovers(os.Stdout, focus,
		aggregate.HighTurnovers(res.Events, focus, cfg.Defense.HighTurnoverRadiusMeters, cfg.Pitch.LengthMeters))

	report.PrintCrossSummary(os.Stdout, focus, aggregate.AnalyzeCrosses(res.Events, focus))
	report.PrintSetPieceSummary(os.Stdout, focus,
		aggregate.SummarizeSetPieces(res.Rows(model.SequenceSetPiece, focus)))
}
