package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

func netPass(id int64, from, to string, x, y, endX, endY float64) Pass {
	p := Pass{Event: pass(id, "Arsenal", from, model.OutcomeSuccessful, x, y, endX, endY)}
	p.Receiver = to
	return p
}

func TestPassNetworkCollapsesDirections(t *testing.T) {
	passes := []Pass{
		netPass(1, "Rice", "Saka", 50, 30, 70, 20),
		netPass(2, "Saka", "Rice", 70, 20, 50, 30),
		netPass(3, "Rice", "Saka", 52, 32, 72, 22),
		netPass(4, "Rice", "Odegaard", 48, 40, 66, 45),
	}
	nodes, links := PassNetwork(passes, "Arsenal")
	require.Len(t, links, 2)
	assert.Equal(t, "Rice", links[0].From)
	assert.Equal(t, "Saka", links[0].To)
	assert.Equal(t, 3, links[0].Count)
	assert.Equal(t, "Odegaard", links[1].From)
	assert.Equal(t, "Rice", links[1].To)
	assert.Equal(t, 1, links[1].Count)

	require.Len(t, nodes, 3)
	// Three pass origins plus one reception sort Rice first on touch
	// volume.
	assert.Equal(t, "Rice", nodes[0].Player)
	assert.Equal(t, 4, nodes[0].Count)
	assert.InDelta(t, 50, nodes[0].X, 1e-9)
}

func TestPassNetworkNodeOrderOnTies(t *testing.T) {
	passes := []Pass{
		netPass(1, "Saka", "Rice", 70, 20, 50, 30),
	}
	nodes, _ := PassNetwork(passes, "Arsenal")
	require.Len(t, nodes, 2)
	// One touch each, so the tie falls back to name order.
	assert.Equal(t, "Rice", nodes[0].Player)
	assert.Equal(t, "Saka", nodes[1].Player)
}

func TestPassNetworkSkipsOtherTeamsAndFailures(t *testing.T) {
	failed := netPass(1, "Rice", "Saka", 50, 30, 70, 20)
	failed.Outcome = model.OutcomeUnsuccessful
	other := netPass(2, "Palmer", "Jackson", 50, 50, 60, 50)
	other.TeamName = "Chelsea"

	nodes, links := PassNetwork([]Pass{failed, other}, "Arsenal")
	assert.Empty(t, nodes)
	assert.Empty(t, links)
}

func TestPassNetworkLinkEndpointsUseMedianPositions(t *testing.T) {
	passes := []Pass{
		netPass(1, "Rice", "Saka", 50, 30, 70, 20),
	}
	_, links := PassNetwork(passes, "Arsenal")
	require.Len(t, links, 1)
	assert.InDelta(t, 50, links[0].FromX, 1e-9)
	assert.InDelta(t, 70, links[0].ToX, 1e-9)
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 2, median([]float64{3, 1, 2}), 1e-9)
	assert.InDelta(t, 2.5, median([]float64{1, 4, 2, 3}), 1e-9)
	assert.True(t, math.IsNaN(median(nil)))
}
