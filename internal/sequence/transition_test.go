package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

func transitionCfg() TransitionConfig {
	return TransitionConfig{
		LossTypes: testLossTypes,
		ShotTypes: testShotTypes,
		MaxPasses: 20,
	}
}

func TestTransitionsDefensiveView(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 20, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 80, 50, 85, 45),
		pass(3, "Arsenal", model.OutcomeSuccessful, 85, 45, 88, 50),
		withQual(ev(4, "Miss", "Arsenal", model.OutcomeUnsuccessful, 88, 50),
			"Goal mouth y co-ordinate", "55"),
	}
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, transitionCfg(), nil)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{2, 3, 4}, rowIDs(rows))

	first := rows[0]
	assert.Equal(t, "Unsuccessful Pass", first.TriggerType)
	assert.Equal(t, ThirdDefensive, first.TriggerZone)
	assert.Equal(t, int64(1), first.TriggerEventID)
	assert.Equal(t, "Shots conceded", first.SequenceOutcome)
	assert.Equal(t, 2, first.PassCount)
	assert.InDelta(t, 55, rows[2].ShotEndY, 1e-9)
}

func TestTransitionsOffensiveView(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 20, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 80, 50, 85, 45),
		ev(3, "Goal", "Arsenal", model.OutcomeSuccessful, 90, 48),
	}
	rows := Transitions(events, "Chelsea", "Arsenal", ViewOffensive, transitionCfg(), nil)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Pass Interception", first.TriggerType)
	// EndX 20 mirrors to 80 on the gaining team's attacking axis.
	assert.Equal(t, ThirdAttacking, first.TriggerZone)
	assert.Equal(t, "Goals", first.SequenceOutcome)
}

func TestTransitionsBigChanceConceded(t *testing.T) {
	events := []model.Event{
		ev(1, "Dispossessed", "Chelsea", model.OutcomeUnsuccessful, 40, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 60, 50, 75, 50),
		pass(3, "Arsenal", model.OutcomeUnsuccessful, 75, 50, 90, 50),
	}
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, transitionCfg(), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Big Chances conceded", rows[0].SequenceOutcome)
	assert.Equal(t, "Dispossessed", rows[0].TriggerType)
}

func TestTransitionsOwnGoal(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 20, 50, 10, 50),
		withQual(ev(2, "Goal", "Chelsea", model.OutcomeSuccessful, 3, 50), "Own goal", "1"),
	}
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, transitionCfg(), nil)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, "Own Goal Conceded", rows[0].SequenceOutcome)
}

func TestTransitionsStoppageOutcomes(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 25, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 70, 50, 80, 50),
		ev(3, "Out", "Arsenal", model.OutcomeUnsuccessful, 85, 99),
	}
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, transitionCfg(), nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Out", rows[0].SequenceOutcome)
}

func TestTransitionsEmptyWalkEmitsNothing(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 25, 50),
		ev(2, "Foul", "Arsenal", model.OutcomeUnsuccessful, 40, 50),
	}
	assert.Empty(t, Transitions(events, "Chelsea", "Arsenal", ViewDefensive, transitionCfg(), nil))
}

func TestTransitionsFailedRegainDoesNotSeedNewSequence(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 25, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 70, 50, 80, 50),
		ev(3, "Challenge", "Chelsea", model.OutcomeUnsuccessful, 78, 50),
		ev(4, "Miss", "Arsenal", model.OutcomeUnsuccessful, 85, 50),
	}
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, transitionCfg(), nil)
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, 0, r.SequenceID)
		assert.Equal(t, int64(1), r.TriggerEventID)
	}
}

func TestTransitionsRespectMaxPasses(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 25, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 40, 50, 50, 50),
		pass(3, "Arsenal", model.OutcomeSuccessful, 50, 50, 60, 50),
		pass(4, "Arsenal", model.OutcomeSuccessful, 60, 50, 70, 50),
		ev(5, "Miss", "Arsenal", model.OutcomeUnsuccessful, 80, 50),
	}
	cfg := transitionCfg()
	cfg.MaxPasses = 2
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, cfg, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Unknown", rows[0].SequenceOutcome)
}

func TestTransitionsMirrorFlank(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeUnsuccessful, 30, 50, 25, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 60, 10, 70, 12),
		pass(3, "Arsenal", model.OutcomeUnsuccessful, 70, 12, 75, 20),
	}
	cfg := transitionCfg()
	rows := Transitions(events, "Chelsea", "Arsenal", ViewDefensive, cfg, nil)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Left", rows[0].DominantFlank)

	cfg.MirrorFlank = true
	rows = Transitions(events, "Chelsea", "Arsenal", ViewDefensive, cfg, nil)
	assert.Equal(t, "Right", rows[0].DominantFlank)
}
