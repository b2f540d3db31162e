package sequence

import (
	"math"

	"go.uber.org/zap"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

const qualGoalMouthY = "Goal mouth y co-ordinate"

// Event types a backward shot walk steps over without including. These are
// contested or incidental touches that do not break the passing chain.
var shotWalkSkipTypes = map[string]bool{
	"Aerial":     true,
	"Ball touch": true,
	"Clearance":  true,
}

// ShotSequences walks backward from every shot and collects the unbroken
// chain of same-team passes that led to it. The walk steps over aerials,
// ball touches and clearances without including them and stops at the first
// other non-pass or opponent event. Sequences from different shots may share
// rows; overlaps are kept.
func ShotSequences(events []model.Event, shotTypes []string, log *zap.Logger) []model.SequenceRow {
	if log == nil {
		log = zap.NewNop()
	}
	shots := toSet(shotTypes)

	var out []model.SequenceRow
	seqID := 0
	for i := range events {
		if !shots[events[i].TypeName] {
			continue
		}
		shotTeam := events[i].TeamName

		idxs := []int{i}
		for j := i - 1; j >= 0; j-- {
			prev := &events[j]
			if prev.IsPass() && prev.TeamName == shotTeam {
				idxs = append(idxs, j)
				continue
			}
			if shotWalkSkipTypes[prev.TypeName] {
				continue
			}
			break
		}

		// idxs were collected shot-first; emit in chronological order.
		for k := len(idxs) - 1; k >= 0; k-- {
			row := model.SequenceRow{Event: events[idxs[k]], SequenceID: seqID}
			if shots[row.TypeName] {
				gm := row.QualifierFloat(qualGoalMouthY)
				if math.IsNaN(gm) {
					gm = 50
				}
				row.EndX = 100
				row.EndY = gm
				row.ShotEndY = gm
			}
			out = append(out, row)
		}
		seqID++
	}

	log.Debug("traced shot sequences", zap.Int("sequences", seqID), zap.Int("rows", len(out)))
	return out
}
