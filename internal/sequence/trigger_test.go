package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

func triggerCfg() TriggerConfig {
	return TriggerConfig{
		Triggers:  testTriggers,
		ShotTypes: testShotTypes,
		MaxPasses: 20,
		StartX:    50,
	}
}

func TestTriggerSequencesSetPiece(t *testing.T) {
	events := []model.Event{
		// Chelsea put the ball out deep in their own half (mirrored: x 80
		// for Arsenal), an attacking restart.
		ev(1, "Out", "Chelsea", model.OutcomeUnsuccessful, 20, 90),
		pass(2, "Arsenal", model.OutcomeSuccessful, 80, 95, 88, 60),
		withQual(ev(3, "Goal", "Arsenal", model.OutcomeSuccessful, 90, 52),
			"Goal mouth y co-ordinate", "48"),
	}
	rows := TriggerSequences(events, "Arsenal", "Chelsea", ModeSetPiece, triggerCfg(), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, []int64{2, 3}, rowIDs(rows))

	first := rows[0]
	assert.Equal(t, "Out", first.TriggerType)
	assert.Equal(t, ThirdAttacking, first.TriggerZone)
	assert.Equal(t, int64(1), first.TriggerEventID)
	assert.Equal(t, "Goals", first.SequenceOutcome)
	assert.Equal(t, 1, first.PassCount)
	assert.InDelta(t, 48, rows[1].ShotEndY, 1e-9)
}

func TestTriggerSequencesBuildupPhaseKeeperRecovery(t *testing.T) {
	gk := ev(1, "Ball recovery", "Arsenal", model.OutcomeSuccessful, 5, 50)
	gk.Role = "GK"
	events := []model.Event{
		gk,
		pass(2, "Arsenal", model.OutcomeSuccessful, 6, 50, 25, 40),
		pass(3, "Arsenal", model.OutcomeUnsuccessful, 25, 40, 45, 30),
	}
	rows := TriggerSequences(events, "Arsenal", "Chelsea", ModeBuildupPhase, triggerCfg(), nil)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Ball recovery", first.TriggerType)
	assert.Equal(t, ThirdDefensive, first.TriggerZone)
	assert.Equal(t, "Lost Possessions", first.SequenceOutcome)
}

func TestTriggerSequencesOutfieldRecoveryIgnored(t *testing.T) {
	rec := ev(1, "Ball recovery", "Arsenal", model.OutcomeSuccessful, 30, 50)
	rec.Role = "RCM"
	events := []model.Event{
		rec,
		pass(2, "Arsenal", model.OutcomeSuccessful, 32, 50, 45, 50),
	}
	assert.Empty(t, TriggerSequences(events, "Arsenal", "Chelsea", ModeBuildupPhase, triggerCfg(), nil))
}

func TestTriggerSequencesHalfSplit(t *testing.T) {
	// A foul conceded by Chelsea at their x 80 mirrors to Arsenal's x 20:
	// own-half restart, so it belongs to the buildup phase scan only.
	events := []model.Event{
		ev(1, "Foul", "Chelsea", model.OutcomeUnsuccessful, 80, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 20, 50, 35, 45),
		pass(3, "Arsenal", model.OutcomeUnsuccessful, 35, 45, 60, 50),
	}
	assert.Empty(t, TriggerSequences(events, "Arsenal", "Chelsea", ModeSetPiece, triggerCfg(), nil))

	rows := TriggerSequences(events, "Arsenal", "Chelsea", ModeBuildupPhase, triggerCfg(), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Foul", rows[0].TriggerType)
	assert.Equal(t, ThirdDefensive, rows[0].TriggerZone)
}

func TestTriggerSequencesCornerZone(t *testing.T) {
	events := []model.Event{
		ev(1, "Corner Awarded", "Chelsea", model.OutcomeUnsuccessful, 2, 1),
		pass(2, "Arsenal", model.OutcomeSuccessful, 99, 100, 90, 60),
		ev(3, "Miss", "Arsenal", model.OutcomeUnsuccessful, 88, 55),
	}
	rows := TriggerSequences(events, "Arsenal", "Chelsea", ModeSetPiece, triggerCfg(), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Corner Awarded", rows[0].TriggerType)
	assert.Equal(t, ThirdAttacking, rows[0].TriggerZone)
	assert.Equal(t, "Shots", rows[0].SequenceOutcome)
}

func TestTriggerSequencesKeepAttackingRowsOnly(t *testing.T) {
	events := []model.Event{
		ev(1, "Keeper pick-up", "Arsenal", model.OutcomeSuccessful, 94, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 95, 50, 70, 50),
		ev(3, "Ball touch", "Chelsea", model.OutcomeSuccessful, 30, 50),
		pass(4, "Arsenal", model.OutcomeUnsuccessful, 70, 50, 55, 50),
	}
	rows := TriggerSequences(events, "Arsenal", "Chelsea", ModeSetPiece, triggerCfg(), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, []int64{2, 4}, rowIDs(rows))
	for _, r := range rows {
		assert.Equal(t, "Arsenal", r.TeamName)
	}
}

func TestTriggerSequencesDefendingRegainEndsWalk(t *testing.T) {
	events := []model.Event{
		ev(1, "Claim", "Arsenal", model.OutcomeSuccessful, 10, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 12, 50, 30, 50),
		ev(3, "Interception", "Chelsea", model.OutcomeSuccessful, 70, 50),
		pass(4, "Arsenal", model.OutcomeSuccessful, 30, 50, 45, 50),
	}
	rows := TriggerSequences(events, "Arsenal", "Chelsea", ModeBuildupPhase, triggerCfg(), nil)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, "Unknown", rows[0].SequenceOutcome)
}
