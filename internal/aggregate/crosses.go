package aggregate

import (
	"math"
	"sort"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// CrossRecord classifies a single cross attempt.
type CrossRecord struct {
	EventID  int64
	Player   string
	PlayType string // From Corner, From Free Kick, Open Play
	Foot     string // Right, Left, Unknown
	Swing    string // In-swinger, Out-swinger, Straight, N/A
	Origin   string
	Target   string
	Outcome  string // Retained, Lost
	X, Y     float64
	EndX     float64
	EndY     float64
}

// CrossStats are value counts over one classification axis, most frequent
// first.
type CrossStat struct {
	Value string
	Count int
}

// CrossSummary aggregates a team's crosses across every axis.
type CrossSummary struct {
	Crosses      []CrossRecord
	Origins      []CrossStat
	Destinations []CrossStat
	PlayTypes    []CrossStat
	Swings       []CrossStat
	Feet         []CrossStat
	Takers       []CrossStat
	Outcomes     []CrossStat
}

// AnalyzeCrosses classifies every cross-flagged pass by the team: where
// it came from and landed, the delivery trajectory, the taker's foot and
// whether possession was retained.
func AnalyzeCrosses(events []model.Event, team string) CrossSummary {
	var sum CrossSummary
	for i := range events {
		e := &events[i]
		if e.TeamName != team || !e.IsPass() || !e.IsCross {
			continue
		}

		rec := CrossRecord{
			EventID:  e.ID,
			Player:   e.PlayerName,
			PlayType: "Open Play",
			Foot:     "Unknown",
			Swing:    "N/A",
			Origin:   crossZone(e.X, e.Y),
			Target:   crossZone(e.EndX, e.EndY),
			Outcome:  "Retained",
			X:        e.X, Y: e.Y, EndX: e.EndX, EndY: e.EndY,
		}
		switch {
		case e.HasFlag("Corner taken"):
			rec.PlayType = "From Corner"
		case e.HasFlag("Freekick taken"):
			rec.PlayType = "From Free Kick"
		}
		switch {
		case e.HasFlag("Right footed"):
			rec.Foot = "Right"
		case e.HasFlag("Left footed"):
			rec.Foot = "Left"
		}
		switch {
		case e.HasFlag("In-swinger"):
			rec.Swing = "In-swinger"
		case e.HasFlag("Out-swinger"):
			rec.Swing = "Out-swinger"
		case e.HasFlag("Straight"):
			rec.Swing = "Straight"
		}
		if e.Unsuccessful() {
			rec.Outcome = "Lost"
		}
		sum.Crosses = append(sum.Crosses, rec)
	}

	if len(sum.Crosses) == 0 {
		return sum
	}
	sum.Origins = valueCounts(sum.Crosses, func(c CrossRecord) string { return c.Origin })
	sum.Destinations = valueCounts(sum.Crosses, func(c CrossRecord) string { return c.Target })
	sum.PlayTypes = valueCounts(sum.Crosses, func(c CrossRecord) string { return c.PlayType })
	sum.Swings = valueCounts(sum.Crosses, func(c CrossRecord) string {
		if c.Swing == "N/A" {
			return ""
		}
		return c.Swing
	})
	sum.Feet = valueCounts(sum.Crosses, func(c CrossRecord) string {
		if c.Foot == "Unknown" {
			return ""
		}
		return c.Foot
	})
	sum.Takers = valueCounts(sum.Crosses, func(c CrossRecord) string { return c.Player })
	sum.Outcomes = valueCounts(sum.Crosses, func(c CrossRecord) string { return c.Outcome })
	return sum
}

// crossZone names the pitch zone a coordinate falls in, side then depth.
func crossZone(x, y float64) string {
	if math.IsNaN(x) || math.IsNaN(y) {
		return "Unknown"
	}
	side := "Center"
	switch {
	case y > 67:
		side = "Left"
	case y < 33:
		side = "Right"
	}
	area := "Midfield"
	switch {
	case x > 80:
		area = "Deep"
	case x > 60:
		area = "Advanced"
	}
	return side + " " + area
}

func valueCounts(crosses []CrossRecord, key func(CrossRecord) string) []CrossStat {
	counts := make(map[string]int)
	for _, c := range crosses {
		if k := key(c); k != "" {
			counts[k]++
		}
	}
	out := make([]CrossStat, 0, len(counts))
	for v, n := range counts {
		out = append(out, CrossStat{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
