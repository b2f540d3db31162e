package aggregate

import (
	"math"
	"sort"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// PPDAPlayer breaks one player's high-press contributions down by action
// type. Tackles and challenges carry a success count alongside the total;
// interceptions, blocked passes and committed fouls are plain counts.
type PPDAPlayer struct {
	Player string
	Jersey int

	TacklesWon, Tackles       int
	ChallengesWon, Challenges int
	Interceptions             int
	BlockedPasses             int
	Fouls                     int
}

// Total counts every pressing action by the player.
func (p PPDAPlayer) Total() int {
	return p.Tackles + p.Challenges + p.Interceptions + p.BlockedPasses + p.Fouls
}

// Successful counts the actions that came off.
func (p PPDAPlayer) Successful() int {
	return p.TacklesWon + p.ChallengesWon + p.Interceptions + p.BlockedPasses
}

// SuccessRate is the share of successful actions, zero when the player has
// none.
func (p PPDAPlayer) SuccessRate() float64 {
	if p.Total() == 0 {
		return 0
	}
	return math.Round(float64(p.Successful())/float64(p.Total())*1000) / 10
}

// PPDAResult holds a team's passes-per-defensive-action ratio and the
// per-player pressing breakdown inside the pressing zone.
type PPDAResult struct {
	Team           string
	Opponent       string
	ZoneX          float64
	PassZoneX      float64
	Actions        int
	OpponentPasses int
	Value          float64 // +Inf when the team registered no actions
	Players        []PPDAPlayer
}

// PPDA measures pressing intensity: opponent passes in their own build-up
// zone (x below passZoneX) divided by the team's defensive actions beyond
// zoneX. Fouls only count when committed (marked Unsuccessful in the feed).
func PPDA(events []model.Event, team, opponent string, zoneX, passZoneX float64) PPDAResult {
	res := PPDAResult{Team: team, Opponent: opponent, ZoneX: zoneX, PassZoneX: passZoneX}
	players := make(map[string]*PPDAPlayer)

	record := func(e *model.Event) *PPDAPlayer {
		p := players[e.PlayerName]
		if p == nil {
			p = &PPDAPlayer{Player: e.PlayerName, Jersey: e.Jersey}
			players[e.PlayerName] = p
		}
		return p
	}

	for i := range events {
		e := &events[i]
		if math.IsNaN(e.X) {
			continue
		}
		if e.TeamName == opponent && e.IsPass() {
			if e.X < passZoneX {
				res.OpponentPasses++
			}
			continue
		}
		if e.TeamName != team || e.X < zoneX {
			continue
		}
		switch e.TypeName {
		case "Tackle":
			p := record(e)
			p.Tackles++
			if e.Successful() {
				p.TacklesWon++
			}
		case "Challenge":
			p := record(e)
			p.Challenges++
			if e.Successful() {
				p.ChallengesWon++
			}
		case "Interception":
			record(e).Interceptions++
		case "Blocked Pass":
			record(e).BlockedPasses++
		case "Foul":
			if !e.Successful() {
				record(e).Fouls++
			}
		}
	}

	for _, p := range players {
		res.Actions += p.Total()
		res.Players = append(res.Players, *p)
	}
	sort.Slice(res.Players, func(i, j int) bool {
		if res.Players[i].Total() != res.Players[j].Total() {
			return res.Players[i].Total() > res.Players[j].Total()
		}
		return res.Players[i].Player < res.Players[j].Player
	})

	if res.Actions == 0 {
		res.Value = math.Inf(1)
	} else {
		res.Value = float64(res.OpponentPasses) / float64(res.Actions)
	}
	return res
}

// defensiveBlockTypes are the actions that define a team's defensive shape.
var defensiveBlockTypes = []string{
	"Tackle", "Interception", "Clearance", "Blocked Pass",
	"Ball recovery", "Foul", "Aerial",
}

// BlockPlayer is a player's median defensive position.
type BlockPlayer struct {
	Player  string
	X, Y    float64
	Count   int
	Jersey  int
	Starter bool
}

// DefensiveBlock aggregates a team's defensive actions into per-player
// median positions, most active players first.
func DefensiveBlock(events []model.Event, team string) []BlockPlayer {
	typeSet := make(map[string]bool, len(defensiveBlockTypes))
	for _, t := range defensiveBlockTypes {
		typeSet[t] = true
	}

	type acc struct {
		xs, ys  []float64
		count   int
		jersey  int
		starter bool
	}
	players := make(map[string]*acc)
	for i := range events {
		e := &events[i]
		if e.TeamName != team || e.PlayerName == "" || !typeSet[e.TypeName] {
			continue
		}
		a := players[e.PlayerName]
		if a == nil {
			a = &acc{jersey: e.Jersey, starter: e.IsStarter}
			players[e.PlayerName] = a
		}
		a.count++
		if !math.IsNaN(e.X) && !math.IsNaN(e.Y) {
			a.xs = append(a.xs, e.X)
			a.ys = append(a.ys, e.Y)
		}
	}

	out := make([]BlockPlayer, 0, len(players))
	for name, a := range players {
		out = append(out, BlockPlayer{
			Player:  name,
			X:       median(a.xs),
			Y:       median(a.ys),
			Count:   a.count,
			Jersey:  a.jersey,
			Starter: a.starter,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Player < out[j].Player
	})
	return out
}
