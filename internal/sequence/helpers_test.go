package sequence

import (
	"math"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

var testShotTypes = []string{"Miss", "Post", "Attempt Saved", "Goal"}

var testLossTypes = []string{
	"Pass", "Take On", "Aerial", "Challenge",
	"Error", "Dispossessed", "Clearance", "Save", "Goal",
}

var testTriggers = []string{
	"Out", "Foul", "Corner Awarded", "Card",
	"Keeper pick-up", "Claim", "Offside provoked", "Ball recovery",
}

// ev builds a minimal event row for walker tests. End coordinates default
// to NaN like a normalized non-pass event.
func ev(id int64, typeName, team string, outcome model.Outcome, x, y float64) model.Event {
	return model.Event{
		ID:       id,
		TypeName: typeName,
		TeamName: team,
		Outcome:  outcome,
		X:        x,
		Y:        y,
		EndX:     math.NaN(),
		EndY:     math.NaN(),
	}
}

func pass(id int64, team string, outcome model.Outcome, x, y, endX, endY float64) model.Event {
	e := ev(id, "Pass", team, outcome, x, y)
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

func rowIDs(rows []model.SequenceRow) []int64 {
	ids := make([]int64, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	return ids
}
