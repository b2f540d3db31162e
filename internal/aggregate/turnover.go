package aggregate

import (
	"math"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// highTurnoverTypes are the regains that qualify as turnovers won.
var highTurnoverTypes = []string{"Ball recovery", "Interception"}

// HighTurnovers returns a team's possession regains close enough to the
// opponent goal, within radiusMeters (scaled to pitch units) of the goal
// center at (100, 50) in the team's attacking frame.
func HighTurnovers(events []model.Event, team string, radiusMeters, pitchLength float64) []model.Event {
	radius := radiusMeters * 100 / pitchLength
	types := toSet(highTurnoverTypes)

	var out []model.Event
	for i := range events {
		e := &events[i]
		if e.TeamName != team || !types[e.TypeName] {
			continue
		}
		if math.IsNaN(e.X) || math.IsNaN(e.Y) {
			continue
		}
		dx, dy := e.X-100, e.Y-50
		if math.Hypot(dx, dy) <= radius {
			out = append(out, *e)
		}
	}
	return out
}
