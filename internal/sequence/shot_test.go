package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

func TestShotSequencesTracesPassChain(t *testing.T) {
	events := []model.Event{
		pass(1, "Arsenal", model.OutcomeSuccessful, 40, 50, 55, 48),
		pass(2, "Arsenal", model.OutcomeSuccessful, 55, 48, 80, 40),
		withQual(ev(3, "Miss", "Arsenal", model.OutcomeUnsuccessful, 85, 45),
			"Goal mouth y co-ordinate", "47.3"),
	}
	rows := ShotSequences(events, testShotTypes, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{1, 2, 3}, rowIDs(rows))
	for _, r := range rows {
		assert.Equal(t, 0, r.SequenceID)
	}

	shot := rows[2]
	assert.InDelta(t, 100, shot.EndX, 1e-9)
	assert.InDelta(t, 47.3, shot.EndY, 1e-9)
	assert.InDelta(t, 47.3, shot.ShotEndY, 1e-9)
}

func TestShotSequencesStepsOverIncidentalTouches(t *testing.T) {
	events := []model.Event{
		pass(1, "Arsenal", model.OutcomeSuccessful, 30, 50, 45, 50),
		ev(2, "Clearance", "Chelsea", model.OutcomeSuccessful, 55, 50),
		pass(3, "Arsenal", model.OutcomeSuccessful, 60, 50, 78, 44),
		ev(4, "Aerial", "Chelsea", model.OutcomeUnsuccessful, 80, 44),
		ev(5, "Goal", "Arsenal", model.OutcomeSuccessful, 88, 47),
	}
	rows := ShotSequences(events, testShotTypes, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{1, 3, 5}, rowIDs(rows))
}

func TestShotSequencesStopAtOpponentPass(t *testing.T) {
	events := []model.Event{
		pass(1, "Chelsea", model.OutcomeSuccessful, 40, 50, 55, 50),
		pass(2, "Arsenal", model.OutcomeSuccessful, 60, 50, 80, 45),
		ev(3, "Miss", "Arsenal", model.OutcomeUnsuccessful, 84, 46),
	}
	rows := ShotSequences(events, testShotTypes, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, []int64{2, 3}, rowIDs(rows))
}

func TestShotSequencesGoalMouthFallback(t *testing.T) {
	events := []model.Event{
		ev(1, "Attempt Saved", "Arsenal", model.OutcomeSuccessful, 80, 30),
	}
	rows := ShotSequences(events, testShotTypes, nil)
	require.Len(t, rows, 1)
	assert.InDelta(t, 50, rows[0].EndY, 1e-9)
	assert.InDelta(t, 50, rows[0].ShotEndY, 1e-9)
}

func TestShotSequencesIndependentIDs(t *testing.T) {
	events := []model.Event{
		pass(1, "Arsenal", model.OutcomeSuccessful, 40, 50, 70, 50),
		ev(2, "Miss", "Arsenal", model.OutcomeUnsuccessful, 75, 50),
		pass(3, "Chelsea", model.OutcomeSuccessful, 30, 40, 60, 40),
		ev(4, "Post", "Chelsea", model.OutcomeUnsuccessful, 82, 42),
	}
	rows := ShotSequences(events, testShotTypes, nil)
	require.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].SequenceID)
	assert.Equal(t, 1, rows[2].SequenceID)
	assert.Equal(t, "Chelsea", rows[2].TeamName)
}

func TestShotSequencesIgnoreNonShotEvents(t *testing.T) {
	events := []model.Event{
		pass(1, "Arsenal", model.OutcomeSuccessful, 40, 50, 60, 50),
		ev(2, "Tackle", "Chelsea", model.OutcomeSuccessful, 60, 50),
	}
	assert.Empty(t, ShotSequences(events, testShotTypes, nil))
}
