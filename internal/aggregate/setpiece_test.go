package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

func spRow(seqID int, trigger string, e model.Event, outcome string) model.SequenceRow {
	return model.SequenceRow{
		Event:           e,
		SequenceID:      seqID,
		TriggerType:     trigger,
		SequenceOutcome: outcome,
	}
}

func TestClassifySetPieceDirectCorner(t *testing.T) {
	delivery := cross(1, "Saka", model.OutcomeSuccessful, 99, 1, 96, 47, "In-swinger", "Left footed")
	rows := []model.SequenceRow{
		spRow(0, "Corner Awarded", delivery, "Shots"),
		spRow(0, "Corner Awarded", ev(2, "Miss", "Arsenal", "Gabriel", model.OutcomeUnsuccessful, 94, 48), "Shots"),
	}
	sum := SummarizeSetPieces(rows)
	require.Len(t, sum.Records, 1)

	rec := sum.Records[0]
	assert.Equal(t, "Corner", rec.ActionType)
	assert.Equal(t, "Direct Cross", rec.Delivery)
	assert.Equal(t, "Right", rec.Side)
	assert.Equal(t, "In-swinger", rec.Swing)
	assert.Equal(t, "Left", rec.Foot)
	assert.Equal(t, "Shots", rec.Outcome)
	// An in-swinger from the right landing short side of the goal line
	// center is the near post.
	assert.Equal(t, "Near Post", rec.Destination)
}

func TestClassifySetPieceShortCornerRoutine(t *testing.T) {
	short := pass(1, "Arsenal", "Saka", model.OutcomeSuccessful, 99, 1, 90, 10)
	delivery := cross(2, "Odegaard", model.OutcomeSuccessful, 90, 10, 97, 55)
	rows := []model.SequenceRow{
		spRow(0, "Corner Awarded", short, "Goals"),
		spRow(0, "Corner Awarded", delivery, "Goals"),
		spRow(0, "Corner Awarded", ev(3, "Goal", "Arsenal", "Havertz", model.OutcomeSuccessful, 95, 52), "Goals"),
	}
	sum := SummarizeSetPieces(rows)
	require.Len(t, sum.Records, 1)

	rec := sum.Records[0]
	assert.Equal(t, "Short Corner + Cross", rec.Delivery)
	assert.Equal(t, "Odegaard", rec.Player)
	// Cross from y 10 (right side), lands at end y 55: across the goal.
	assert.Equal(t, "Far Post", rec.Destination)
	assert.Equal(t, "Goals", rec.Outcome)
}

func TestClassifySetPieceThrowInAndFreeKick(t *testing.T) {
	rows := []model.SequenceRow{
		spRow(0, "Out", pass(1, "Arsenal", "White", model.OutcomeSuccessful, 70, 95, 75, 80), "Lost Possessions"),
		spRow(1, "Foul", pass(2, "Arsenal", "Rice", model.OutcomeSuccessful, 40, 50, 60, 50), "Out"),
	}
	sum := SummarizeSetPieces(rows)
	require.Len(t, sum.Records, 2)

	assert.Equal(t, "Throw-in", sum.Records[0].ActionType)
	assert.Equal(t, "Throw-in", sum.Records[0].Delivery)
	assert.Equal(t, "Left", sum.Records[0].Side)
	assert.Equal(t, "N/A", sum.Records[0].Destination)

	assert.Equal(t, "Free Kick", sum.Records[1].ActionType)
	assert.Equal(t, "Short Pass", sum.Records[1].Delivery)
	// Restarts in the own half carry no side.
	assert.Equal(t, "Center", sum.Records[1].Side)

	assert.Equal(t, []CrossStat{{"Free Kick", 1}, {"Throw-in", 1}}, sum.ActionTypes)
}

func TestClassifySetPieceSkipsSequencesWithoutPasses(t *testing.T) {
	rows := []model.SequenceRow{
		spRow(0, "Corner Awarded", ev(1, "Aerial", "Arsenal", "Gabriel", model.OutcomeSuccessful, 95, 50), "Unknown"),
	}
	assert.Empty(t, SummarizeSetPieces(rows).Records)
}

func TestCrossDestination(t *testing.T) {
	assert.Equal(t, "Center of 6-Yard Box", crossDestination(50, 96, 50))
	assert.Equal(t, "Near Post", crossDestination(10, 95, 40))
	assert.Equal(t, "Far Post", crossDestination(10, 95, 60))
	assert.Equal(t, "Near Post", crossDestination(90, 95, 60))
	assert.Equal(t, "Center Box", crossDestination(10, 88, 50))
	assert.Equal(t, "Edge of Box / Other", crossDestination(10, 78, 50))
}

func TestGroupBySequenceOrder(t *testing.T) {
	rows := []model.SequenceRow{
		spRow(2, "Out", pass(5, "Arsenal", "a", model.OutcomeSuccessful, 50, 50, 55, 50), ""),
		spRow(0, "Out", pass(1, "Arsenal", "a", model.OutcomeSuccessful, 50, 50, 55, 50), ""),
		spRow(0, "Out", pass(2, "Arsenal", "a", model.OutcomeSuccessful, 55, 50, 60, 50), ""),
	}
	groups := GroupBySequence(rows)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, int64(1), groups[0][0].ID)
	assert.Equal(t, 2, groups[1][0].SequenceID)
}
