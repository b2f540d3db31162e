package sequence

import (
	"math"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// Pitch third labels keyed off the x coordinate.
const (
	ThirdDefensive = "Defensive Third"
	ThirdMiddle    = "Middle Third"
	ThirdAttacking = "Attacking Third"
	ThirdUnknown   = "Unknown Third"
)

// PitchThird buckets an x coordinate into thirds.
func PitchThird(x float64) string {
	switch {
	case math.IsNaN(x):
		return ThirdUnknown
	case x <= 33.33:
		return ThirdDefensive
	case x <= 66.67:
		return ThirdMiddle
	default:
		return ThirdAttacking
	}
}

// inBigChanceArea reports whether a pass end location lands in the central
// box in front of goal.
func inBigChanceArea(endX, endY float64) bool {
	return endX >= 83 && endY >= 21.1 && endY <= 78.9
}

// dominantFlank classifies a sequence by the mean y of its pass and shot
// rows. Mirror flips left/right for the team attacking the other way.
func dominantFlank(rows []model.SequenceRow, shots map[string]bool, mirror bool) string {
	sum, n := 0.0, 0
	for i := range rows {
		r := &rows[i]
		if (r.IsPass() || r.TypeName == "Carry" || shots[r.TypeName]) && !math.IsNaN(r.Y) {
			sum += r.Y
			n++
		}
	}
	if n == 0 {
		return "Central"
	}
	flank := "Central"
	switch avg := sum / float64(n); {
	case avg < 33:
		flank = "Left"
	case avg > 66:
		flank = "Right"
	}
	if mirror {
		switch flank {
		case "Left":
			flank = "Right"
		case "Right":
			flank = "Left"
		}
	}
	return flank
}

func toSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}
