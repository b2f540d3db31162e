package aggregate

import (
	"sort"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// PlayerStats rolls the event table up into one summary row per player.
// Shot assists combine key passes and assists; "buildup to shot" counts
// passes whose immediate follow-up was a key pass.
func PlayerStats(events []model.Event, shotTypes []string, rule ProgressiveRule) []model.PlayerStats {
	shots := toSet(shotTypes)
	prog := ProgressivePassIDs(events, rule)

	stats := make(map[string]*model.PlayerStats)
	get := func(e *model.Event) *model.PlayerStats {
		s := stats[e.PlayerID]
		if s == nil {
			s = &model.PlayerStats{
				PlayerID:   e.PlayerID,
				PlayerName: e.PlayerName,
				ShortName:  e.ShortName,
				TeamName:   e.TeamName,
				Jersey:     e.Jersey,
				IsStarter:  e.IsStarter,
			}
			stats[e.PlayerID] = s
		}
		if s.Role == "" || s.Role == "Sub/Unknown" {
			s.Role = e.Role
		}
		return s
	}

	for i := range events {
		e := &events[i]
		if e.PlayerID == "" {
			continue
		}
		s := get(e)

		if shots[e.TypeName] {
			s.Shots++
			if e.TypeName == "Goal" {
				s.Goals++
			}
		}

		switch e.TypeName {
		case "Pass":
			s.TotalPasses++
			if e.Successful() {
				s.AccuratePasses++
			}
			if e.IsKeyPass || e.IsAssist {
				s.ShotAssists++
			}
			if e.IsAssist {
				s.Assists++
			}
			if prog[e.ID] {
				s.ProgPasses++
			}
			if e.EndX >= 83 && e.EndY >= 21.1 && e.EndY <= 78.9 {
				s.PassesIntoBox++
			}
			if i+1 < len(events) && events[i+1].IsKeyPass {
				s.BuildupToShot++
			}
		case "Tackle":
			if e.Successful() {
				s.TacklesWon++
			} else {
				s.TacklesLost++
			}
		case "Interception":
			s.Interceptions++
		case "Clearance":
			s.Clearances++
		case "Ball recovery":
			s.BallRecoveries++
		case "Aerial":
			if e.Successful() {
				s.AerialsWon++
			} else {
				s.AerialsLost++
			}
		case "Foul":
			if e.Successful() {
				s.FoulsWon++
			} else {
				s.FoulsCommitted++
			}
		}
	}

	out := make([]model.PlayerStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamName != out[j].TeamName {
			return out[i].TeamName < out[j].TeamName
		}
		if out[i].TotalPasses != out[j].TotalPasses {
			return out[i].TotalPasses > out[j].TotalPasses
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
