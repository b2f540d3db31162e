package sequence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// View selects whose perspective a transition scan takes: the team that
// loses the ball (defensive) or the team that wins it (offensive). The walk
// is identical, only zones and labels flip.
type View int

const (
	ViewDefensive View = iota
	ViewOffensive
)

// TransitionConfig tunes a transition scan.
type TransitionConfig struct {
	// LossTypes are the event type names that count as losing possession.
	LossTypes []string
	// ShotTypes are the event type names that count as a shot.
	ShotTypes []string
	// MaxPasses caps how many gaining-team passes a single sequence may
	// contain before the trace gives up.
	MaxPasses int
	// MirrorFlank flips the left/right flank labels, for the team
	// attacking right to left on the shared pitch view.
	MirrorFlank bool
}

// Event types that immediately terminate a transition sequence.
var transitionEndTypes = map[string]bool{
	"Foul": true, "Out": true, "Keeper pick-up": true, "Claim": true,
	"Dispossessed": true, "Offside Pass": true, "Corner Awarded": true,
}

// Transitions scans the event table for moments where `losing` gives the
// ball away and traces what `gaining` does with it: the chain of passes and
// its terminal action (shot, giveaway, stoppage). Every returned row carries
// the loss context and the sequence outcome.
func Transitions(events []model.Event, losing, gaining string, view View, cfg TransitionConfig, log *zap.Logger) []model.SequenceRow {
	if log == nil {
		log = zap.NewNop()
	}
	lossTypes := toSet(cfg.LossTypes)
	shots := toSet(cfg.ShotTypes)

	var out []model.SequenceRow
	seqID := 0
	processedLossIDs := make(map[int64]bool)
	seenLoss := make(map[int64]bool)

	for i := range events {
		loss := &events[i]
		if !isLossTrigger(loss, losing, gaining, lossTypes) {
			continue
		}
		if seenLoss[loss.ID] || processedLossIDs[loss.ID] {
			continue
		}
		seenLoss[loss.ID] = true

		zone := lossZone(loss, view)
		lossLabel := lossTypeLabel(loss, view)

		rows, outcome := walkTransition(events, i, losing, gaining, view, shots, cfg.MaxPasses, processedLossIDs)
		if len(rows) == 0 {
			continue
		}

		passCount := 0
		for k := range rows {
			if rows[k].IsPass() && rows[k].Successful() {
				passCount++
			}
		}
		flank := dominantFlank(rows, shots, cfg.MirrorFlank)
		for k := range rows {
			rows[k].SequenceID = seqID
			rows[k].TriggerType = lossLabel
			rows[k].TriggerZone = zone
			rows[k].TriggerEventID = loss.ID
			rows[k].TriggerMinute = loss.Minute
			rows[k].TriggerSecond = loss.Second
			rows[k].SequenceOutcome = outcome
			rows[k].PassCount = passCount
			rows[k].DominantFlank = flank
		}
		out = append(out, rows...)
		seqID++
	}

	log.Debug("traced transition sequences",
		zap.String("losing", losing), zap.Int("sequences", seqID), zap.Int("rows", len(out)))
	return out
}

// isLossTrigger reports whether the event counts as `losing` giving the
// ball away. A save by the gaining keeper and any goal also hand possession
// over.
func isLossTrigger(e *model.Event, losing, gaining string, types map[string]bool) bool {
	switch e.TypeName {
	case "Goal":
		return types["Goal"]
	case "Pass", "Take On", "Aerial", "Challenge":
		return types[e.TypeName] && e.TeamName == losing && e.Unsuccessful()
	case "Error", "Dispossessed", "Clearance":
		return types[e.TypeName] && e.TeamName == losing
	case "Save":
		return types["Save"] && e.TeamName == gaining && e.Successful()
	}
	return false
}

// lossZone buckets where possession changed hands. The defensive view reads
// coordinates as the losing team recorded them; the offensive view mirrors
// them onto the gaining team's attacking direction.
func lossZone(loss *model.Event, view View) string {
	if view == ViewDefensive {
		if loss.IsPass() {
			return PitchThird(loss.EndX)
		}
		return PitchThird(loss.X)
	}
	switch loss.TypeName {
	case "Aerial", "Dispossessed", "Challenge", "Take On", "Error":
		return PitchThird(100 - loss.X)
	default:
		return PitchThird(100 - loss.EndX)
	}
}

// lossTypeLabel names the giveaway for reporting. Unsuccessful actions get
// view-specific labels: the defensive view describes the failure, the
// offensive view describes the duel won.
func lossTypeLabel(loss *model.Event, view View) string {
	label := loss.TypeName
	if label == "" {
		label = "Unknown Loss"
	}
	if !loss.Unsuccessful() || label == "Error" || label == "Dispossessed" {
		return label
	}
	if view == ViewDefensive {
		return fmt.Sprintf("Unsuccessful %s", label)
	}
	switch label {
	case "Pass":
		return "Pass Interception"
	case "Take On":
		return "Ground Duel won (failed Take On)"
	case "Aerial":
		return "Aerial Duel won"
	}
	return label
}

// walkTransition traces forward from the loss at index i and returns the
// deduplicated sequence rows plus the outcome classification.
func walkTransition(events []model.Event, i int, losing, gaining string, view View, shots map[string]bool, maxPasses int, processedLossIDs map[int64]bool) ([]model.SequenceRow, string) {
	defensive := view == ViewDefensive
	outcome := "Unknown"
	var rows []model.SequenceRow
	appended := make(map[int64]bool)

	appendRow := func(e *model.Event, shotEndY float64) {
		if appended[e.ID] {
			return
		}
		appended[e.ID] = true
		rows = append(rows, model.SequenceRow{Event: *e, ShotEndY: shotEndY})
	}

	passes := 0
	for j := i + 1; j < len(events) && passes < maxPasses; j++ {
		act := &events[j]
		isGaining := act.TeamName == gaining
		isLosing := act.TeamName == losing
		isOwnGoal := act.HasFlag("Own goal")

		switch {
		case isOwnGoal && isLosing:
			appendRow(act, 0)
			if defensive {
				outcome = "Own Goal Conceded"
			} else {
				outcome = "Forced Own Goal"
			}
			return rows, outcome

		case transitionEndTypes[act.TypeName]:
			if len(rows) == 0 {
				return rows, outcome
			}
			appendRow(act, 0)
			switch act.TypeName {
			case "Foul":
				outcome = "Foul"
			case "Offside Pass":
				outcome = "Offside"
			case "Out":
				outcome = "Out"
			case "Corner Awarded":
				outcome = "Corner"
			case "Dispossessed":
				outcome = possessionTurnoverLabel(defensive)
			}
			return rows, outcome

		case isGaining && act.IsPass() && act.Successful():
			appendRow(act, 0)
			passes++

		case isGaining && act.IsPass() && act.Unsuccessful():
			appendRow(act, 0)
			if inBigChanceArea(act.EndX, act.EndY) {
				if defensive {
					outcome = "Big Chances conceded"
				} else {
					outcome = "Big Chances"
				}
			} else {
				outcome = possessionTurnoverLabel(defensive)
			}
			return rows, outcome

		case isGaining && shots[act.TypeName] && !isOwnGoal:
			appendRow(act, act.QualifierFloat(qualGoalMouthY))
			if act.TypeName == "Goal" {
				if defensive {
					outcome = "Goals conceded"
				} else {
					outcome = "Goals"
				}
			} else {
				if defensive {
					outcome = "Shots conceded"
				} else {
					outcome = "Shots"
				}
			}
			return rows, outcome

		case act.TypeName == "Unknown Type":
			continue

		case act.TypeName == "Ball touch" && act.Successful():
			continue

		case isGaining && act.Successful():
			continue

		case isGaining && act.TypeName == "Take On" && act.Unsuccessful():
			appendRow(act, 0)
			return rows, possessionTurnoverLabel(defensive)

		case isGaining && act.TypeName == "Ball touch" && act.Unsuccessful():
			if len(rows) == 0 {
				return rows, outcome
			}
			appendRow(act, 0)
			return rows, possessionTurnoverLabel(defensive)

		case isLosing && act.Unsuccessful():
			// Failed attempt to win the ball back. It must not seed its
			// own sequence later.
			processedLossIDs[act.ID] = true
			continue

		case isLosing && act.Successful():
			return rows, outcome

		default:
			return rows, outcome
		}
	}
	return rows, outcome
}

func possessionTurnoverLabel(defensive bool) string {
	if defensive {
		return "Regained Possessions"
	}
	return "Lost Possessions"
}
