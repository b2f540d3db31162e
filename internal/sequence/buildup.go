package sequence

import (
	"math"

	"go.uber.org/zap"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// BuildupSequences finds possession chains that start with a pass played
// from deep (x <= startX) and follows them forward through same-team passes
// that stay behind maxX. A sequence ends inclusively at the first
// unsuccessful pass, and exclusively when the ball leaves the buildup zone,
// changes team or the next event is not a pass. Passes already consumed by
// an earlier sequence never start or extend another one.
func BuildupSequences(events []model.Event, startX, maxX float64, log *zap.Logger) []model.SequenceRow {
	if log == nil {
		log = zap.NewNop()
	}

	visited := make(map[int]bool)
	var out []model.SequenceRow
	seqID := 0

	for i := range events {
		start := &events[i]
		if visited[i] || !start.IsPass() || math.IsNaN(start.X) || start.X > startX {
			continue
		}

		idxs := []int{i}
		visited[i] = true

		if start.Successful() {
			team := start.TeamName
			for j := i + 1; j < len(events); j++ {
				next := &events[j]
				if !next.IsPass() || next.TeamName != team || visited[j] {
					break
				}
				if next.Unsuccessful() {
					// The giveaway that ends the buildup is kept even when
					// it travels past the buildup zone.
					idxs = append(idxs, j)
					visited[j] = true
					break
				}
				if math.IsNaN(next.X) || next.X > maxX {
					break
				}
				idxs = append(idxs, j)
				visited[j] = true
			}
		}

		for _, idx := range idxs {
			out = append(out, model.SequenceRow{Event: events[idx], SequenceID: seqID})
		}
		seqID++
	}

	log.Debug("traced buildup sequences", zap.Int("sequences", seqID), zap.Int("rows", len(out)))
	return out
}
