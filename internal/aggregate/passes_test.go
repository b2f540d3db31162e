package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

func TestProgressivePassIDs(t *testing.T) {
	// On a 105m pitch the meter thresholds scale to roughly 28.6, 14.3
	// and 9.5 coordinate units.
	events := []model.Event{
		pass(1, "Arsenal", "a", model.OutcomeSuccessful, 10, 50, 40, 50),  // own half, 30 units
		pass(2, "Arsenal", "a", model.OutcomeSuccessful, 10, 50, 35, 50),  // own half, too short
		pass(3, "Arsenal", "a", model.OutcomeSuccessful, 40, 50, 56, 50),  // crosses halfway, 16 units
		pass(4, "Arsenal", "a", model.OutcomeSuccessful, 45, 50, 55, 50),  // crosses halfway, too short
		pass(5, "Arsenal", "a", model.OutcomeSuccessful, 60, 50, 71, 50),  // opponent half, 11 units
		pass(6, "Arsenal", "a", model.OutcomeSuccessful, 60, 50, 68, 50),  // opponent half, too short
		pass(7, "Arsenal", "a", model.OutcomeUnsuccessful, 10, 50, 60, 50),
		pass(8, "Arsenal", "a", model.OutcomeSuccessful, 60, 50, 40, 50), // backward
		flagged(pass(9, "Arsenal", "a", model.OutcomeSuccessful, 10, 50, 60, 50), "Cross"),
		flagged(pass(10, "Arsenal", "a", model.OutcomeSuccessful, 10, 50, 60, 50), "Throw-in"),
	}
	prog := ProgressivePassIDs(events, testRule())
	assert.Equal(t, map[int64]bool{1: true, 3: true, 5: true}, prog)
}

func TestProgressivePassIDsMissingCoordinates(t *testing.T) {
	// A missing start x reads as 50; a missing end x means no gain.
	p1 := pass(1, "Arsenal", "a", model.OutcomeSuccessful, math.NaN(), 50, 70, 50)
	p2 := pass(2, "Arsenal", "a", model.OutcomeSuccessful, 30, 50, math.NaN(), 50)
	prog := ProgressivePassIDs([]model.Event{p1, p2}, testRule())
	assert.Equal(t, map[int64]bool{1: true}, prog)
}

func TestPassesReceiverAndBoxFlag(t *testing.T) {
	events := []model.Event{
		pass(1, "Arsenal", "Martin Odegaard", model.OutcomeSuccessful, 70, 40, 85, 50),
		ev(2, "Ball touch", "Arsenal", "Kai Havertz", model.OutcomeSuccessful, 85, 50),
		pass(3, "Arsenal", "Kai Havertz", model.OutcomeSuccessful, 85, 50, 83.4, 50),
	}
	events[1].Jersey = 29

	passes := Passes(events, testRule())
	require.Len(t, passes, 2)

	assert.Equal(t, "Kai Havertz", passes[0].Receiver)
	assert.Equal(t, 29, passes[0].ReceiverJersey)
	assert.True(t, passes[0].IsIntoBox)

	// 83.4 sits just outside the box line, and the last event of the
	// match has nobody to receive.
	assert.False(t, passes[1].IsIntoBox)
	assert.Equal(t, "", passes[1].Receiver)
}

func TestProgressiveZoneCounts(t *testing.T) {
	events := []model.Event{
		pass(1, "Arsenal", "a", model.OutcomeSuccessful, 10, 80, 45, 80), // left channel
		pass(2, "Arsenal", "a", model.OutcomeSuccessful, 10, 50, 45, 50), // middle
		pass(3, "Arsenal", "a", model.OutcomeSuccessful, 10, 10, 45, 10), // right
		pass(4, "Chelsea", "b", model.OutcomeSuccessful, 10, 50, 45, 50),
	}
	z := ProgressiveZoneCounts(events, "Arsenal", testRule())
	assert.Equal(t, ProgressiveZones{Total: 3, Left: 1, Mid: 1, Right: 1}, z)
}

func TestSubstitutes(t *testing.T) {
	starter := ev(1, "Pass", "Arsenal", "Bukayo Saka", model.OutcomeSuccessful, 50, 50)
	starter.IsStarter = true
	events := []model.Event{
		starter,
		ev(2, "Pass", "Arsenal", "Eddie Nketiah", model.OutcomeSuccessful, 60, 50),
		ev(3, "Tackle", "Arsenal", "Eddie Nketiah", model.OutcomeSuccessful, 40, 50),
		ev(4, "Pass", "Chelsea", "Raheem Sterling", model.OutcomeSuccessful, 50, 50),
	}
	assert.Equal(t, []string{"Eddie Nketiah"}, Substitutes(events, "Arsenal"))
}
