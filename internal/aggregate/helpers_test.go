package aggregate

import (
	"math"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// testRule mirrors the default progressive thresholds on a 105m pitch.
func testRule() ProgressiveRule {
	return ProgressiveRule{
		OwnHalfMeters:     30,
		CrossHalfMeters:   15,
		OppHalfMeters:     10,
		PitchLengthMeters: 105,
		Exclusions:        []string{"Cross", "Launch", "Throw-in"},
	}
}

func ev(id int64, typeName, team, player string, outcome model.Outcome, x, y float64) model.Event {
	return model.Event{
		ID:         id,
		TypeName:   typeName,
		TeamName:   team,
		PlayerID:   player,
		PlayerName: player,
		Outcome:    outcome,
		X:          x,
		Y:          y,
		EndX:       math.NaN(),
		EndY:       math.NaN(),
	}
}

func pass(id int64, team, player string, outcome model.Outcome, x, y, endX, endY float64) model.Event {
	e := ev(id, "Pass", team, player, outcome, x, y)
	e.EndX = endX
	e.EndY = endY
	return e
}

func withQual(e model.Event, name, value string) model.Event {
	if e.Qualifiers == nil {
		e.Qualifiers = map[string]string{}
	}
	e.Qualifiers[name] = value
	return e
}

func flagged(e model.Event, names ...string) model.Event {
	for _, n := range names {
		e = withQual(e, n, "1")
	}
	return e
}
