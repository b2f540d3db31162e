package aggregate

import (
	"math"
	"sort"
	"strings"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// SetPieceRecord classifies one restart sequence: what kind of restart it
// was, how the delivery went in and where it landed.
type SetPieceRecord struct {
	SequenceID  int
	Player      string
	ActionType  string // Corner, Free Kick, Throw-in
	Side        string
	Delivery    string // Direct Cross, Short Corner + Cross, Short Pass, Throw-in
	Swing       string
	Foot        string
	Destination string
	Outcome     string
}

// SetPieceSummary is the per-sequence classification plus value counts per
// axis.
type SetPieceSummary struct {
	Records      []SetPieceRecord
	Total        int
	ActionTypes  []CrossStat
	Sides        []CrossStat
	Deliveries   []CrossStat
	Swings       []CrossStat
	Feet         []CrossStat
	Destinations []CrossStat
	Outcomes     []CrossStat
}

// setPieceActionNames maps restart triggers to the set piece they produce.
var setPieceActionNames = map[string]string{
	"Out":            "Throw-in",
	"Foul":           "Free Kick",
	"Corner Awarded": "Corner",
}

// SummarizeSetPieces classifies restart sequences. The delivery event is
// the first cross in the sequence when one exists, otherwise the first
// pass; a corner whose cross arrives after a different opening pass is a
// short corner routine.
func SummarizeSetPieces(rows []model.SequenceRow) SetPieceSummary {
	var sum SetPieceSummary
	for _, seq := range GroupBySequence(rows) {
		rec, ok := classifySetPiece(seq)
		if !ok {
			continue
		}
		sum.Records = append(sum.Records, rec)
	}
	if len(sum.Records) == 0 {
		return sum
	}

	sum.Total = len(sum.Records)
	sum.ActionTypes = recordCounts(sum.Records, func(r SetPieceRecord) string { return r.ActionType })
	sum.Sides = recordCounts(sum.Records, func(r SetPieceRecord) string { return r.Side })
	sum.Deliveries = recordCounts(sum.Records, func(r SetPieceRecord) string { return r.Delivery })
	sum.Swings = recordCounts(sum.Records, func(r SetPieceRecord) string {
		if r.Swing == "N/A" {
			return ""
		}
		return r.Swing
	})
	sum.Feet = recordCounts(sum.Records, func(r SetPieceRecord) string {
		if r.Foot == "Unknown" {
			return ""
		}
		return r.Foot
	})
	sum.Destinations = recordCounts(sum.Records, func(r SetPieceRecord) string {
		if r.Destination == "N/A" {
			return ""
		}
		return r.Destination
	})
	sum.Outcomes = recordCounts(sum.Records, func(r SetPieceRecord) string { return r.Outcome })
	return sum
}

func classifySetPiece(seq []model.SequenceRow) (SetPieceRecord, bool) {
	trigger := seq[0]
	action := setPieceActionNames[trigger.TriggerType]
	if action == "" {
		action = trigger.TriggerType
	}

	var initial, cross *model.SequenceRow
	for i := range seq {
		r := &seq[i]
		if initial == nil && r.IsPass() {
			initial = r
		}
		if cross == nil && r.IsCross {
			cross = r
		}
	}
	if initial == nil {
		return SetPieceRecord{}, false
	}
	delivery := initial
	if cross != nil {
		delivery = cross
	}

	rec := SetPieceRecord{
		SequenceID: trigger.SequenceID,
		Player:     delivery.PlayerName,
		ActionType: action,
		Side:       "Center",
		Swing:      "N/A",
		Foot:       "Unknown",
		Outcome:    seq[len(seq)-1].SequenceOutcome,
	}

	switch {
	case action == "Throw-in":
		rec.Delivery = "Throw-in"
	case action == "Corner" && cross != nil && initial.ID != cross.ID:
		rec.Delivery = "Short Corner + Cross"
	case delivery.IsCross:
		rec.Delivery = "Direct Cross"
	default:
		rec.Delivery = "Short Pass"
	}

	if delivery.X > 50 {
		switch {
		case delivery.Y > 67:
			rec.Side = "Left"
		case delivery.Y < 33:
			rec.Side = "Right"
		}
	}
	switch {
	case delivery.HasFlag("Right footed"):
		rec.Foot = "Right"
	case delivery.HasFlag("Left footed"):
		rec.Foot = "Left"
	}
	if strings.Contains(rec.Delivery, "Cross") {
		switch {
		case delivery.HasFlag("In-swinger"):
			rec.Swing = "In-swinger"
		case delivery.HasFlag("Out-swinger"):
			rec.Swing = "Out-swinger"
		case delivery.HasFlag("Straight"):
			rec.Swing = "Straight"
		}
		rec.Destination = crossDestination(delivery.Y, delivery.EndX, delivery.EndY)
	} else {
		rec.Destination = "N/A"
	}
	return rec, true
}

// crossDestination names where a delivery lands relative to the goal,
// resolving near and far post from the side the cross came from.
func crossDestination(startY, endX, endY float64) string {
	if math.IsNaN(startY) || math.IsNaN(endX) || math.IsNaN(endY) {
		return "Unknown"
	}
	// six-yard box
	if endX >= 94.5 && endY >= 36.8 && endY <= 63.2 {
		switch {
		case startY < 45:
			if endY < 50 {
				return "Near Post"
			}
			return "Far Post"
		case startY > 55:
			if endY > 50 {
				return "Near Post"
			}
			return "Far Post"
		default:
			return "Center of 6-Yard Box"
		}
	}
	if endX >= 83.5 {
		return "Center Box"
	}
	return "Edge of Box / Other"
}

// GroupBySequence splits annotated rows into per-sequence slices, keeping
// both row order and sequence order.
func GroupBySequence(rows []model.SequenceRow) [][]model.SequenceRow {
	byID := make(map[int][]model.SequenceRow)
	var order []int
	for _, r := range rows {
		if _, seen := byID[r.SequenceID]; !seen {
			order = append(order, r.SequenceID)
		}
		byID[r.SequenceID] = append(byID[r.SequenceID], r)
	}
	sort.Ints(order)
	out := make([][]model.SequenceRow, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

func recordCounts(recs []SetPieceRecord, key func(SetPieceRecord) string) []CrossStat {
	counts := make(map[string]int)
	for _, r := range recs {
		if k := key(r); k != "" {
			counts[k]++
		}
	}
	out := make([]CrossStat, 0, len(counts))
	for v, n := range counts {
		out = append(out, CrossStat{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
