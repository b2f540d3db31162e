package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/matchlens/go-opta-metrics/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the match database",
	Long: `Run an arbitrary SQL query against the match database and print results as a table.

Schema overview:
  matches(hash, run_id, competition, match_date, home_team, away_team,
    home_code, away_code, home_score, away_score, status, event_count)
  events(feed_hash, id, event_id, type_id, type_name, period, minute, second,
    team_name, player_name, outcome, x, y, end_x, end_y, role, is_starter,
    is_key_pass, is_cross, qualifiers, ...)
  sequences(feed_hash, kind, team_name, sequence_id, ord, event_ref,
    trigger_type, trigger_zone, sequence_outcome, pass_count, dominant_flank, ...)
  player_stats(feed_hash, player_id, player_name, team_name, jersey, role,
    shots, goals, total_passes, accurate_passes, prog_passes, tackles_won, ...)

Note: qualifiers is a JSON object keyed by qualifier name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
