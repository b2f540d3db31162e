package aggregate

import (
	"math"
	"sort"
)

// PlayerNode is a player's median on-ball position with touch volume,
// used as a pass network vertex.
type PlayerNode struct {
	Player string
	X, Y   float64
	Count  int
	Jersey int
}

// NetworkLink is an undirected pass connection between two players. From
// and To are sorted alphabetically so that both directions collapse into
// a single link.
type NetworkLink struct {
	From, To     string
	Count        int
	FromX, FromY float64
	ToX, ToY     float64
}

// PassNetwork builds the median-position nodes and undirected links for a
// team's completed passes between named players.
func PassNetwork(passes []Pass, team string) ([]PlayerNode, []NetworkLink) {
	type acc struct {
		xs, ys []float64
		jersey int
	}
	players := make(map[string]*acc)
	touch := func(name string, x, y float64, jersey int) {
		if name == "" {
			return
		}
		a := players[name]
		if a == nil {
			a = &acc{jersey: jersey}
			players[name] = a
		}
		if !math.IsNaN(x) && !math.IsNaN(y) {
			a.xs = append(a.xs, x)
			a.ys = append(a.ys, y)
		}
	}

	linkCount := make(map[[2]string]int)
	for i := range passes {
		p := &passes[i]
		if p.TeamName != team || !p.Successful() {
			continue
		}
		touch(p.PlayerName, p.X, p.Y, p.Jersey)
		touch(p.Receiver, p.EndX, p.EndY, p.ReceiverJersey)
		if p.PlayerName == "" || p.Receiver == "" || p.PlayerName == p.Receiver {
			continue
		}
		pair := [2]string{p.PlayerName, p.Receiver}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		linkCount[pair]++
	}

	nodes := make([]PlayerNode, 0, len(players))
	pos := make(map[string][2]float64, len(players))
	for name, a := range players {
		n := PlayerNode{
			Player: name,
			X:      median(a.xs),
			Y:      median(a.ys),
			Count:  len(a.xs),
			Jersey: a.jersey,
		}
		nodes = append(nodes, n)
		pos[name] = [2]float64{n.X, n.Y}
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Count != nodes[j].Count {
			return nodes[i].Count > nodes[j].Count
		}
		return nodes[i].Player < nodes[j].Player
	})

	links := make([]NetworkLink, 0, len(linkCount))
	for pair, n := range linkCount {
		from, to := pos[pair[0]], pos[pair[1]]
		links = append(links, NetworkLink{
			From: pair[0], To: pair[1], Count: n,
			FromX: from[0], FromY: from[1],
			ToX: to[0], ToY: to[1],
		})
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Count != links[j].Count {
			return links[i].Count > links[j].Count
		}
		return links[i].From < links[j].From
	})
	return nodes, links
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}
