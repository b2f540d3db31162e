package aggregate

import (
	"math"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// Pass is a pass row enriched with receiver and classification flags.
type Pass struct {
	model.Event

	Receiver       string
	ReceiverJersey int
	IsProgressive  bool
	IsIntoBox      bool
}

// ProgressiveRule holds the thresholds that decide whether a pass is
// progressive, in meters, scaled to pitch units via PitchLengthMeters.
type ProgressiveRule struct {
	OwnHalfMeters     float64
	CrossHalfMeters   float64
	OppHalfMeters     float64
	PitchLengthMeters float64
	Exclusions        []string
}

// Passes extracts every pass from the event table, attaching the receiver
// (the player acting next), the progressive flag and the into-box flag.
func Passes(events []model.Event, rule ProgressiveRule) []Pass {
	prog := ProgressivePassIDs(events, rule)

	var out []Pass
	for i := range events {
		e := &events[i]
		if !e.IsPass() {
			continue
		}
		p := Pass{
			Event:         *e,
			IsProgressive: prog[e.ID],
			IsIntoBox:     e.EndX >= 83.5 && e.EndY >= 21.1 && e.EndY <= 78.9,
		}
		if i+1 < len(events) {
			p.Receiver = events[i+1].PlayerName
			p.ReceiverJersey = events[i+1].Jersey
		}
		out = append(out, p)
	}
	return out
}

// ProgressivePassIDs returns the ids of successful passes that move the
// ball far enough toward the opponent goal: 30m within the own half, 15m
// when crossing halfway, 10m within the opponent half. Passes carrying any
// of the excluded qualifiers (crosses, launches, throw-ins) never count.
func ProgressivePassIDs(events []model.Event, rule ProgressiveRule) map[int64]bool {
	scale := 100.0 / rule.PitchLengthMeters
	t30, t15, t10 := rule.OwnHalfMeters*scale, rule.CrossHalfMeters*scale, rule.OppHalfMeters*scale

	out := make(map[int64]bool)
	for i := range events {
		e := &events[i]
		if !e.IsPass() || !e.Successful() || hasAnyFlag(e, rule.Exclusions) {
			continue
		}
		x := e.X
		if math.IsNaN(x) {
			x = 50
		}
		endX := e.EndX
		if math.IsNaN(endX) {
			endX = x
		}
		gain := endX - x
		if gain <= 0 {
			continue
		}
		switch {
		case x <= 50 && endX <= 50 && gain >= t30,
			x <= 50 && endX > 50 && gain >= t15,
			x > 50 && endX > 50 && gain >= t10:
			out[e.ID] = true
		}
	}
	return out
}

// ProgressiveZones counts progressive passes by the vertical channel they
// start from.
type ProgressiveZones struct {
	Total, Left, Mid, Right int
}

// ProgressiveZoneCounts buckets a team's progressive passes by starting y.
func ProgressiveZoneCounts(events []model.Event, team string, rule ProgressiveRule) ProgressiveZones {
	prog := ProgressivePassIDs(events, rule)
	var z ProgressiveZones
	for i := range events {
		e := &events[i]
		if !prog[e.ID] || e.TeamName != team {
			continue
		}
		z.Total++
		y := e.Y
		if math.IsNaN(y) {
			y = 50
		}
		switch {
		case y < 33.33:
			z.Right++
		case y < 66.67:
			z.Mid++
		default:
			z.Left++
		}
	}
	return z
}

// Substitutes lists players who appeared without being in the starting
// eleven.
func Substitutes(events []model.Event, team string) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range events {
		e := &events[i]
		if e.TeamName != team || e.PlayerName == "" || e.IsStarter || seen[e.PlayerName] {
			continue
		}
		seen[e.PlayerName] = true
		out = append(out, e.PlayerName)
	}
	return out
}

func hasAnyFlag(e *model.Event, names []string) bool {
	for _, n := range names {
		if e.HasFlag(n) {
			return true
		}
	}
	return false
}
