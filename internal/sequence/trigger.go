package sequence

import (
	"go.uber.org/zap"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// Mode selects which restarts a trigger scan keeps: ModeSetPiece keeps
// triggers in the attacking team's opponent half, ModeBuildupPhase keeps
// those in its own half.
type Mode int

const (
	ModeBuildupPhase Mode = iota
	ModeSetPiece
)

// TriggerConfig tunes a trigger scan.
type TriggerConfig struct {
	// Triggers are the event type names that restart play for the
	// attacking team.
	Triggers []string
	// ShotTypes are the event type names that count as a shot.
	ShotTypes []string
	// MaxPasses caps the passes traced per sequence.
	MaxPasses int
	// StartX is the halfway line used to split own half from opponent half.
	StartX float64
	// MirrorFlank flips left/right flank labels.
	MirrorFlank bool
}

// Event types that immediately terminate a trigger sequence.
var triggerEndTypes = map[string]bool{
	"Foul": true, "Out": true, "Keeper pick-up": true, "Claim": true,
	"Dispossessed": true, "Offside Pass": true,
}

// TriggerSequences finds the attacking team's possessions that start from a
// restart or regain trigger (out of play, foul won, keeper claim, deep
// recovery...) and traces the passing chain that follows. Only attacking
// team rows are returned; each carries the trigger context.
func TriggerSequences(events []model.Event, attacking, defending string, mode Mode, cfg TriggerConfig, log *zap.Logger) []model.SequenceRow {
	if log == nil {
		log = zap.NewNop()
	}
	triggers := toSet(cfg.Triggers)
	shots := toSet(cfg.ShotTypes)

	var out []model.SequenceRow
	seqID := 0
	processedTriggerIDs := make(map[int64]bool)
	seenTrigger := make(map[int64]bool)

	for i := range events {
		trig := &events[i]
		if !isRestartTrigger(trig, attacking, defending, triggers) {
			continue
		}
		if !inHalfForMode(trig, attacking, mode, cfg.StartX) {
			continue
		}
		if seenTrigger[trig.ID] || processedTriggerIDs[trig.ID] {
			continue
		}
		seenTrigger[trig.ID] = true

		zone := triggerZone(events, i, attacking)

		rows, outcome := walkTrigger(events, i, attacking, defending, shots, cfg.MaxPasses, processedTriggerIDs)

		// Only the attacking team's actions count toward the sequence.
		kept := rows[:0]
		for k := range rows {
			if rows[k].TeamName == attacking {
				kept = append(kept, rows[k])
			}
		}
		rows = kept
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
			rows[k].TriggerType = trig.TypeName
			rows[k].TriggerZone = zone
			rows[k].TriggerEventID = trig.ID
			rows[k].TriggerMinute = trig.Minute
			rows[k].TriggerSecond = trig.Second
			rows[k].SequenceOutcome = outcome
			rows[k].PassCount = passCount
			rows[k].DominantFlank = flank
		}
		out = append(out, rows...)
		seqID++
	}

	log.Debug("traced trigger sequences",
		zap.String("attacking", attacking), zap.Int("mode", int(mode)),
		zap.Int("sequences", seqID), zap.Int("rows", len(out)))
	return out
}

// isRestartTrigger reports whether the event restarts play for the
// attacking team. Each trigger type has its own team and outcome condition.
func isRestartTrigger(e *model.Event, attacking, defending string, triggers map[string]bool) bool {
	if !triggers[e.TypeName] {
		return false
	}
	switch e.TypeName {
	case "Out", "Foul", "Corner Awarded":
		return e.TeamName == defending && e.Unsuccessful()
	case "Card":
		return e.TeamName == defending && e.Successful()
	case "Keeper pick-up", "Claim", "Offside provoked":
		return e.TeamName == attacking && e.Successful()
	case "Ball recovery":
		return e.TeamName == attacking && e.Successful() && e.Role == "GK"
	}
	return false
}

// inHalfForMode keeps triggers in the half of the pitch the mode cares
// about. Defending-team triggers record coordinates from the other end, so
// the comparison flips.
func inHalfForMode(e *model.Event, attacking string, mode Mode, startX float64) bool {
	own := e.TeamName == attacking
	if mode == ModeBuildupPhase {
		if own {
			return e.X <= startX
		}
		return e.X >= startX
	}
	if own {
		return e.X >= startX
	}
	return e.X <= startX
}

// triggerZone buckets where the attacking team restarts. Defending-team
// stoppages mirror the coordinate; card and offside triggers take the
// location of the restart that follows them.
func triggerZone(events []model.Event, i int, attacking string) string {
	trig := &events[i]
	switch trig.TypeName {
	case "Out", "Foul":
		return PitchThird(100 - trig.X)
	case "Card", "Offside provoked":
		if i+1 < len(events) {
			return PitchThird(events[i+1].X)
		}
		return ThirdUnknown
	case "Corner Awarded":
		if trig.TeamName == attacking {
			return PitchThird(trig.X)
		}
		return PitchThird(100 - trig.X)
	default:
		return PitchThird(trig.X)
	}
}

// walkTrigger traces forward from the trigger at index i.
func walkTrigger(events []model.Event, i int, attacking, defending string, shots map[string]bool, maxPasses int, processedTriggerIDs map[int64]bool) ([]model.SequenceRow, string) {
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
		isAttacking := act.TeamName == attacking
		isDefending := act.TeamName == defending

		switch {
		case triggerEndTypes[act.TypeName]:
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
			case "Dispossessed":
				outcome = "Lost Possessions"
			}
			return rows, outcome

		case isAttacking && act.IsPass() && act.Successful():
			appendRow(act, 0)
			passes++

		case isAttacking && act.IsPass() && act.Unsuccessful():
			appendRow(act, 0)
			if inBigChanceArea(act.EndX, act.EndY) {
				outcome = "Big Chances"
			} else {
				outcome = "Lost Possessions"
			}
			return rows, outcome

		case isAttacking && shots[act.TypeName]:
			appendRow(act, act.QualifierFloat(qualGoalMouthY))
			switch {
			case act.TypeName == "Goal" && act.HasFlag("Own goal"):
				outcome = "Own Goal"
			case act.TypeName == "Goal":
				outcome = "Goals"
			default:
				outcome = "Shots"
			}
			return rows, outcome

		case act.TypeName == "Unknown Type":
			continue

		case act.TypeName == "Ball touch" && act.Successful():
			appendRow(act, 0)
			continue

		case isAttacking && act.Successful():
			continue

		case isAttacking && act.TypeName == "Take On" && act.Unsuccessful():
			appendRow(act, 0)
			return rows, "Lost Possessions"

		case isAttacking && act.TypeName == "Ball touch" && act.Unsuccessful():
			if len(rows) == 0 {
				return rows, outcome
			}
			appendRow(act, 0)
			return rows, "Lost Possessions"

		case isDefending && act.Unsuccessful():
			processedTriggerIDs[act.ID] = true
			continue

		case isDefending && act.Successful():
			return rows, outcome

		default:
			return rows, outcome
		}
	}
	return rows, outcome
}
