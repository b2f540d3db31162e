package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/matchlens/go-opta-metrics/internal/aggregate"
	"github.com/matchlens/go-opta-metrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, s model.MatchSummary) {
	fmt.Fprintf(w, "\n%s %s - %s %s  |  %s  |  %s  |  Events: %d  |  Hash: %s\n\n",
		s.HomeTeam, s.Score(), s.AwayTeam, statusSuffix(s.Status),
		s.Competition, formatDate(s.MatchDate), s.EventCount, shortHash(s.FeedHash))
}

// formatDate renders a stored "2024-08-10" date as "10 Aug 2024". Dates
// that do not parse pass through untouched.
func formatDate(d string) string {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return t.Format("02 Jan 2006")
}

func statusSuffix(status string) string {
	if status == "" || status == "Played" {
		return ""
	}
	return "(" + status + ")"
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// PrintPlayerTable writes the per-player rollup table.
// If focusTeam is non-empty, that team's rows are marked with ">".
func PrintPlayerTable(w io.Writer, stats []model.PlayerStats, focusTeam string) {
	table := newTable(w)
	table.Header(
		" ", "PLAYER", "TEAM", "ROLE", "SHOTS", "G", "SA", "A",
		"PASSES", "ACC%", "PROG", "BOX", "BUILDUP",
		"TKL_W", "INT", "CLR", "REC", "AER_W",
	)

	for _, s := range stats {
		marker := " "
		if focusTeam != "" && s.TeamName == focusTeam {
			marker = ">"
		}
		name := s.ShortName
		if name == "" {
			name = s.PlayerName
		}
		if !s.IsStarter {
			name += " (s)"
		}
		table.Append(
			marker,
			name,
			s.TeamName,
			s.Role,
			strconv.Itoa(s.Shots),
			strconv.Itoa(s.Goals),
			strconv.Itoa(s.ShotAssists),
			strconv.Itoa(s.Assists),
			fmt.Sprintf("%d/%d", s.AccuratePasses, s.TotalPasses),
			fmt.Sprintf("%.0f%%", s.PassPct()),
			strconv.Itoa(s.ProgPasses),
			strconv.Itoa(s.PassesIntoBox),
			strconv.Itoa(s.BuildupToShot),
			strconv.Itoa(s.TacklesWon),
			strconv.Itoa(s.Interceptions),
			strconv.Itoa(s.Clearances),
			strconv.Itoa(s.BallRecoveries),
			strconv.Itoa(s.AerialsWon),
		)
	}
	table.Render()
}

// PrintSequenceTable writes one line per detected sequence: when it started,
// what triggered it, where, and how it ended.
func PrintSequenceTable(w io.Writer, title string, rows []model.SequenceRow) {
	seqs := aggregate.GroupBySequence(rows)
	if len(seqs) == 0 {
		fmt.Fprintf(w, "%s: none detected\n", title)
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(seqs))

	table := newTable(w)
	table.Header("#", "CLOCK", "TRIGGER", "ZONE", "EVENTS", "PASSES", "FLANK", "OUTCOME")

	for _, seq := range seqs {
		first, last := seq[0], seq[len(seq)-1]
		trigger := first.TriggerType
		if trigger == "" {
			trigger = first.TypeName
		}
		table.Append(
			strconv.Itoa(first.SequenceID),
			fmt.Sprintf("%02d:%02d", first.TriggerMinute, first.TriggerSecond),
			trigger,
			first.TriggerZone,
			strconv.Itoa(len(seq)),
			strconv.Itoa(first.PassCount),
			first.DominantFlank,
			last.SequenceOutcome,
		)
	}
	table.Render()
}

// PrintTransitionSummary rolls a transition table up: counts by outcome,
// giveaway type and flank, then a per-zone profile with average chain
// length and duration.
func PrintTransitionSummary(w io.Writer, title string, rows []model.SequenceRow) {
	seqs := aggregate.GroupBySequence(rows)
	if len(seqs) == 0 {
		return
	}
	fmt.Fprintf(w, "%s summary (%d sequences):\n", title, len(seqs))

	type zoneAcc struct {
		count   int
		passes  int
		seconds int
	}
	outcomes := make(map[string]int)
	triggers := make(map[string]int)
	flanks := make(map[string]int)
	zones := make(map[string]*zoneAcc)

	for _, seq := range seqs {
		first, last := seq[0], seq[len(seq)-1]
		outcomes[last.SequenceOutcome]++
		triggers[first.TriggerType]++
		flanks[first.DominantFlank]++

		z := zones[first.TriggerZone]
		if z == nil {
			z = &zoneAcc{}
			zones[first.TriggerZone] = z
		}
		z.count++
		z.passes += first.PassCount
		if d := last.TotalSeconds() - (first.TriggerMinute*60 + first.TriggerSecond); d > 0 {
			z.seconds += d
		}
	}

	printCounts(w, "By outcome", tally(outcomes))
	printCounts(w, "By giveaway", tally(triggers))
	printCounts(w, "By flank", tally(flanks))

	names := make([]string, 0, len(zones))
	for name := range zones {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if zones[names[i]].count != zones[names[j]].count {
			return zones[names[i]].count > zones[names[j]].count
		}
		return names[i] < names[j]
	})

	table := newTable(w)
	table.Header("ZONE", "SEQ", "AVG PASSES", "AVG SECS")
	for _, name := range names {
		z := zones[name]
		table.Append(
			name,
			strconv.Itoa(z.count),
			fmt.Sprintf("%.1f", float64(z.passes)/float64(z.count)),
			fmt.Sprintf("%.1f", float64(z.seconds)/float64(z.count)),
		)
	}
	table.Render()
}

// tally turns a name count map into sorted stat rows.
func tally(counts map[string]int) []aggregate.CrossStat {
	out := make([]aggregate.CrossStat, 0, len(counts))
	for v, n := range counts {
		if v == "" {
			continue
		}
		out = append(out, aggregate.CrossStat{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// PrintPPDATable writes the pressing summary: the team ratio followed by the
// per-player action breakdown inside the zone.
func PrintPPDATable(w io.Writer, res aggregate.PPDAResult) {
	ppda := "∞"
	if !math.IsInf(res.Value, 1) {
		ppda = fmt.Sprintf("%.2f", res.Value)
	}
	fmt.Fprintf(w, "%s PPDA: %s  (%d opponent passes under x=%.0f / %d defensive actions beyond x=%.0f)\n",
		res.Team, ppda, res.OpponentPasses, res.PassZoneX, res.Actions, res.ZoneX)
	if len(res.Players) == 0 {
		return
	}

	table := newTable(w)
	table.Header("PLAYER", "TOT", "SUCC", "SUCC%", "TKL", "CHL", "INT", "BLK", "FLS")

	for _, p := range res.Players {
		table.Append(
			fmt.Sprintf("#%d %s", p.Jersey, p.Player),
			strconv.Itoa(p.Total()),
			strconv.Itoa(p.Successful()),
			fmt.Sprintf("%.1f%%", p.SuccessRate()),
			fmt.Sprintf("%d/%d", p.TacklesWon, p.Tackles),
			fmt.Sprintf("%d/%d", p.ChallengesWon, p.Challenges),
			strconv.Itoa(p.Interceptions),
			strconv.Itoa(p.BlockedPasses),
			strconv.Itoa(p.Fouls),
		)
	}
	table.Render()
}

// PrintPassNetwork writes the busiest pass connections with the player
// touch volumes underneath.
func PrintPassNetwork(w io.Writer, team string, nodes []aggregate.PlayerNode, links []aggregate.NetworkLink, topN int) {
	fmt.Fprintf(w, "%s pass network (%d players, %d connections):\n", team, len(nodes), len(links))

	table := newTable(w)
	table.Header("CONNECTION", "PASSES", "FROM (X,Y)", "TO (X,Y)")
	for i, l := range links {
		if topN > 0 && i >= topN {
			break
		}
		table.Append(
			l.From+" ↔ "+l.To,
			strconv.Itoa(l.Count),
			fmt.Sprintf("%.0f,%.0f", l.FromX, l.FromY),
			fmt.Sprintf("%.0f,%.0f", l.ToX, l.ToY),
		)
	}
	table.Render()
}

// PrintDefensiveBlock writes the per-player median defensive positions.
func PrintDefensiveBlock(w io.Writer, team string, players []aggregate.BlockPlayer) {
	fmt.Fprintf(w, "%s defensive block:\n", team)
	table := newTable(w)
	table.Header("PLAYER", "ACTIONS", "MED_X", "MED_Y", "XI")

	for _, p := range players {
		starter := ""
		if p.Starter {
			starter = "*"
		}
		table.Append(
			fmt.Sprintf("#%d %s", p.Jersey, p.Player),
			strconv.Itoa(p.Count),
			fmt.Sprintf("%.1f", p.X),
			fmt.Sprintf("%.1f", p.Y),
			starter,
		)
	}
	table.Render()
}

// PrintHighTurnovers lists regains close to the opponent goal.
func PrintHighTurnovers(w io.Writer, team string, turnovers []model.Event) {
	fmt.Fprintf(w, "%s high turnovers: %d\n", team, len(turnovers))
	if len(turnovers) == 0 {
		return
	}
	table := newTable(w)
	table.Header("CLOCK", "PLAYER", "TYPE", "X", "Y")
	for i := range turnovers {
		e := &turnovers[i]
		table.Append(
			e.Clock(),
			e.PlayerName,
			e.TypeName,
			fmt.Sprintf("%.1f", e.X),
			fmt.Sprintf("%.1f", e.Y),
		)
	}
	table.Render()
}

// PrintCrossSummary writes the per-cross classification and the axis counts.
func PrintCrossSummary(w io.Writer, team string, sum aggregate.CrossSummary) {
	fmt.Fprintf(w, "%s crosses: %d\n", team, len(sum.Crosses))
	if len(sum.Crosses) == 0 {
		return
	}
	table := newTable(w)
	table.Header("PLAYER", "PLAY", "FOOT", "SWING", "FROM", "TO", "OUTCOME")
	for _, c := range sum.Crosses {
		table.Append(c.Player, c.PlayType, c.Foot, c.Swing, c.Origin, c.Target, c.Outcome)
	}
	table.Render()

	printCounts(w, "By origin", sum.Origins)
	printCounts(w, "By destination", sum.Destinations)
	printCounts(w, "By outcome", sum.Outcomes)
}

// PrintSetPieceSummary writes the restart classification plus axis counts.
func PrintSetPieceSummary(w io.Writer, team string, sum aggregate.SetPieceSummary) {
	fmt.Fprintf(w, "%s set pieces: %d\n", team, sum.Total)
	if sum.Total == 0 {
		return
	}
	table := newTable(w)
	table.Header("#", "PLAYER", "ACTION", "SIDE", "DELIVERY", "SWING", "FOOT", "DESTINATION", "OUTCOME")
	for _, r := range sum.Records {
		table.Append(
			strconv.Itoa(r.SequenceID),
			r.Player, r.ActionType, r.Side, r.Delivery, r.Swing, r.Foot, r.Destination, r.Outcome,
		)
	}
	table.Render()

	printCounts(w, "By action", sum.ActionTypes)
	printCounts(w, "By delivery", sum.Deliveries)
	printCounts(w, "By destination", sum.Destinations)
	printCounts(w, "By outcome", sum.Outcomes)
}

// PrintProgressiveZones writes the progressive pass channel breakdown.
func PrintProgressiveZones(w io.Writer, team string, z aggregate.ProgressiveZones) {
	fmt.Fprintf(w, "%s progressive passes: %d (left %d / middle %d / right %d)\n",
		team, z.Total, z.Left, z.Mid, z.Right)
}

func printCounts(w io.Writer, title string, counts []aggregate.CrossStat) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s: ", title)
	for i, c := range counts {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%s %d", c.Value, c.Count)
	}
	fmt.Fprintln(w)
}
