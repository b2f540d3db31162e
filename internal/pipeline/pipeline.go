package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchlens/go-opta-metrics/internal/aggregate"
	"github.com/matchlens/go-opta-metrics/internal/config"
	"github.com/matchlens/go-opta-metrics/internal/feed"
	"github.com/matchlens/go-opta-metrics/internal/model"
	"github.com/matchlens/go-opta-metrics/internal/normalize"
	"github.com/matchlens/go-opta-metrics/internal/sequence"
)

// SequenceSet is one detector's output for one team.
type SequenceSet struct {
	Kind model.SequenceKind
	Team string
	Rows []model.SequenceRow
}

// Result bundles everything a processed feed produces.
type Result struct {
	Summary   model.MatchSummary
	Home      string
	Away      string
	Events    []model.Event
	Sequences []SequenceSet
	Players   []model.PlayerStats
}

// Run normalizes a raw feed and runs every detector and rollup over it.
func Run(root *feed.Root, feedHash string, events map[int]string, qualifiers map[int64]string, cfg *config.Config, log *zap.Logger) (*Result, error) {
	if len(root.LiveData.Events) == 0 {
		return nil, fmt.Errorf("feed has no events")
	}

	norm := normalize.New(events, qualifiers, cfg, log)
	table := norm.Normalize(root)

	home := root.MatchInfo.Home().Name
	away := root.MatchInfo.Away().Name
	if home == "" || away == "" {
		return nil, fmt.Errorf("feed names %d contestants, need 2", len(root.MatchInfo.Contestants))
	}

	summary := root.Summary(feedHash)
	summary.RunID = uuid.NewString()
	summary.EventCount = len(table)

	res := &Result{
		Summary: summary,
		Home:    home,
		Away:    away,
		Events:  table,
	}

	res.Sequences = append(res.Sequences, splitByTeam(
		model.SequenceShot,
		sequence.ShotSequences(table, cfg.Sequences.ShotTypes, log),
		func(seq []model.SequenceRow) string { return seq[len(seq)-1].TeamName },
	)...)

	res.Sequences = append(res.Sequences, splitByTeam(
		model.SequenceBuildup,
		sequence.BuildupSequences(table, cfg.Sequences.BuildupStartX, cfg.Sequences.BuildupMaxX, log),
		func(seq []model.SequenceRow) string { return seq[0].TeamName },
	)...)

	tcfg := sequence.TransitionConfig{
		LossTypes: cfg.Sequences.LossTypes,
		ShotTypes: cfg.Sequences.ShotTypes,
		MaxPasses: cfg.Sequences.MaxPasses,
	}
	gcfg := sequence.TriggerConfig{
		Triggers:  cfg.Sequences.RestartTriggers,
		ShotTypes: cfg.Sequences.ShotTypes,
		MaxPasses: cfg.Sequences.SetPieceMaxPasses,
		StartX:    50,
	}

	for _, sides := range [][2]string{{home, away}, {away, home}} {
		team, opp := sides[0], sides[1]
		res.Sequences = append(res.Sequences,
			SequenceSet{
				Kind: model.SequenceDefensiveTransition,
				Team: team,
				Rows: sequence.Transitions(table, team, opp, sequence.ViewDefensive, tcfg, log),
			},
			SequenceSet{
				Kind: model.SequenceOffensiveTransition,
				Team: team,
				Rows: sequence.Transitions(table, opp, team, sequence.ViewOffensive, tcfg, log),
			},
			SequenceSet{
				Kind: model.SequenceSetPiece,
				Team: team,
				Rows: sequence.TriggerSequences(table, team, opp, sequence.ModeSetPiece, gcfg, log),
			},
			SequenceSet{
				Kind: model.SequenceBuildupPhase,
				Team: team,
				Rows: sequence.TriggerSequences(table, team, opp, sequence.ModeBuildupPhase, gcfg, log),
			},
		)
	}

	res.Players = aggregate.PlayerStats(table, cfg.Sequences.ShotTypes, ProgressiveRule(cfg))
	for i := range res.Players {
		res.Players[i].FeedHash = feedHash
	}

	log.Info("processed feed",
		zap.String("home", home), zap.String("away", away),
		zap.Int("events", len(table)), zap.Int("players", len(res.Players)))
	return res, nil
}

// ProgressiveRule builds the pass progression thresholds from config.
func ProgressiveRule(cfg *config.Config) aggregate.ProgressiveRule {
	return aggregate.ProgressiveRule{
		OwnHalfMeters:     cfg.Passing.ProgOwnHalfMeters,
		CrossHalfMeters:   cfg.Passing.ProgCrossHalfMeters,
		OppHalfMeters:     cfg.Passing.ProgOppHalfMeters,
		PitchLengthMeters: cfg.Pitch.LengthMeters,
		Exclusions:        cfg.Passing.ProgExclusions,
	}
}

// Rows returns the stored rows for one kind and team, nil when absent.
func (r *Result) Rows(kind model.SequenceKind, team string) []model.SequenceRow {
	for _, s := range r.Sequences {
		if s.Kind == kind && s.Team == team {
			return s.Rows
		}
	}
	return nil
}

// splitByTeam buckets a match-wide detector's rows by the team that owns
// each sequence.
func splitByTeam(kind model.SequenceKind, rows []model.SequenceRow, owner func([]model.SequenceRow) string) []SequenceSet {
	byTeam := make(map[string][]model.SequenceRow)
	var order []string
	for _, seq := range aggregate.GroupBySequence(rows) {
		team := owner(seq)
		if _, seen := byTeam[team]; !seen {
			order = append(order, team)
		}
		byTeam[team] = append(byTeam[team], seq...)
	}
	out := make([]SequenceSet, 0, len(order))
	for _, team := range order {
		out = append(out, SequenceSet{Kind: kind, Team: team, Rows: byTeam[team]})
	}
	return out
}
