package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/matchlens/go-opta-metrics/internal/storage"
)

// PrintTeamRecord writes a team's results line across stored matches.
func PrintTeamRecord(w io.Writer, rec storage.TeamRecord) {
	fmt.Fprintf(w, "\n%s: %d matches, %d-%d-%d (W-D-L), %d scored / %d conceded\n\n",
		rec.Team, rec.Matches, rec.Wins, rec.Draws, rec.Losses,
		rec.GoalsFor, rec.GoalsAgainst)
}

// PrintOutcomeCounts writes how a team's sequences ended across matches.
func PrintOutcomeCounts(w io.Writer, title string, counts []storage.OutcomeCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	table := newTable(w)
	table.Header("OUTCOME", "COUNT")
	for _, c := range counts {
		table.Append(c.Outcome, strconv.Itoa(c.Count))
	}
	table.Render()
}

// PrintTeamPlayerTotals writes summed player rollups across matches.
func PrintTeamPlayerTotals(w io.Writer, totals []storage.PlayerTotals) {
	if len(totals) == 0 {
		return
	}
	table := newTable(w)
	table.Header("PLAYER", "MATCHES", "G", "A", "SHOTS", "SA", "PASSES", "ACC", "PROG", "TKL_W")
	for _, p := range totals {
		table.Append(
			p.PlayerName,
			strconv.Itoa(p.Matches),
			strconv.Itoa(p.Goals),
			strconv.Itoa(p.Assists),
			strconv.Itoa(p.Shots),
			strconv.Itoa(p.ShotAssists),
			strconv.Itoa(p.Passes),
			strconv.Itoa(p.Accurate),
			strconv.Itoa(p.ProgPasses),
			strconv.Itoa(p.TacklesWon),
		)
	}
	table.Render()
}
