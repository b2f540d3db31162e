package normalize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/matchlens/go-opta-metrics/internal/config"
	"github.com/matchlens/go-opta-metrics/internal/feed"
	"github.com/matchlens/go-opta-metrics/internal/lineup"
	"github.com/matchlens/go-opta-metrics/internal/model"
)

// Qualifier names the pipeline relies on after decoding.
const (
	qualAssist   = "Assist"
	qualPassEndX = "Pass End X"
	qualPassEndY = "Pass End Y"
	qualCross    = "Cross"
	qualLongBall = "Long ball"
	qualThrowIn  = "Throw-in"
)

const deletedEventType = "Deleted event"

// Normalizer turns a cleaned raw feed into the canonical sorted event table.
type Normalizer struct {
	events     map[int]string
	qualifiers map[int64]string
	cfg        *config.Config
	log        *zap.Logger

	unknownQIDs map[int64]bool
}

// New builds a Normalizer. Empty mappings are allowed: type and qualifier
// names then fall back to their generic forms.
func New(events map[int]string, qualifiers map[int64]string, cfg *config.Config, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Normalizer{
		events:      events,
		qualifiers:  qualifiers,
		cfg:         cfg,
		log:         log,
		unknownQIDs: make(map[int64]bool),
	}
}

// Normalize sorts, decodes, enriches and dedupes the feed's events into the
// canonical table. The input feed is not modified.
func (n *Normalizer) Normalize(root *feed.Root) []model.Event {
	raw := make([]feed.RawEvent, len(root.LiveData.Events))
	copy(raw, root.LiveData.Events)
	sortEvents(raw)

	tracker := lineup.NewTracker(n.log)
	for _, ev := range raw {
		if ev.TypeID == lineup.TypeLineup {
			tracker.Seed(ev.ContestantID, qualifierValues(ev.Qualifiers))
		}
	}

	out := make([]model.Event, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for _, ev := range raw {
		if ev.TypeID == lineup.TypeLineup {
			tracker.Observe(ev.ContestantID, qualifierValues(ev.Qualifiers))
		}

		e := n.decode(ev, root.MatchInfo, tracker)
		if e.TypeName == deletedEventType {
			continue
		}
		if seen[e.ID] {
			n.log.Debug("dropping duplicate event id", zap.Int64("id", e.ID))
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

// sortEvents orders the feed rows by the canonical key. The sort is stable
// so re-running it on an already sorted slice is a no-op.
func sortEvents(events []feed.RawEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.PeriodID != b.PeriodID {
			return a.PeriodID < b.PeriodID
		}
		if a.TimeMin != b.TimeMin {
			return a.TimeMin < b.TimeMin
		}
		if a.TimeSec != b.TimeSec {
			return a.TimeSec < b.TimeSec
		}
		if a.TimeStamp != b.TimeStamp {
			return a.TimeStamp < b.TimeStamp
		}
		return a.ID < b.ID
	})
}

func (n *Normalizer) decode(ev feed.RawEvent, info feed.MatchInfo, tracker *lineup.Tracker) model.Event {
	e := model.Event{
		ID:         ev.ID,
		EventID:    ev.EventID,
		TypeID:     ev.TypeID,
		TypeName:   n.typeName(ev.TypeID),
		Period:     ev.PeriodID,
		Minute:     ev.TimeMin,
		Second:     ev.TimeSec,
		Timestamp:  ev.TimeStamp,
		TeamID:     ev.ContestantID,
		TeamName:   info.TeamName(ev.ContestantID),
		PlayerID:   ev.PlayerID,
		PlayerName: ev.PlayerName,
		ShortName:  ShorterName(ev.PlayerName),
		Outcome:    model.OutcomeFromFlag(ev.Outcome),
		X:          floatOrNaN(ev.X),
		Y:          floatOrNaN(ev.Y),
		EndX:       math.NaN(),
		EndY:       math.NaN(),
		Role:       lineup.RoleSubUnknown,
		Qualifiers: n.decodeQualifiers(ev.Qualifiers),
	}

	e.EndX = e.QualifierFloat(qualPassEndX)
	e.EndY = e.QualifierFloat(qualPassEndY)
	e.IsCross = e.HasFlag(qualCross)
	e.IsLongBall = e.HasFlag(qualLongBall)
	e.IsThrowIn = e.HasFlag(qualThrowIn)

	if e.IsPass() {
		if v, ok := e.Qualifier(qualAssist); ok {
			if num, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				e.IsKeyPass = containsInt(n.cfg.Passing.KeyPassValues, num)
				e.IsAssist = containsInt(n.cfg.Passing.AssistValues, num)
			}
		}
	}

	meta, role := tracker.Resolve(ev.ContestantID, ev.PlayerID)
	e.Jersey = meta.Jersey
	e.Slot = meta.Slot
	e.IsStarter = meta.IsStarter
	e.Role = role
	return e
}

// decodeQualifiers resolves qualifier ids to names and collects values.
// Flags (qualifiers with no value) decode to "1". Ids missing from the
// mapping become qualifier_<id> and are logged once per id. When two
// qualifiers of one event resolve to the same name, later ones get a
// _2, _3... suffix.
func (n *Normalizer) decodeQualifiers(quals []feed.RawQualifier) map[string]string {
	if len(quals) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(quals))
	counts := make(map[string]int, len(quals))
	for _, q := range quals {
		name, ok := n.qualifiers[q.QualifierID]
		if !ok {
			name = fmt.Sprintf("qualifier_%d", q.QualifierID)
			if !n.unknownQIDs[q.QualifierID] {
				n.unknownQIDs[q.QualifierID] = true
				n.log.Warn("qualifier id missing from mapping", zap.Int64("qualifierId", q.QualifierID))
			}
		}
		counts[name]++
		if c := counts[name]; c > 1 {
			name = fmt.Sprintf("%s_%d", name, c)
		}
		if q.Value == nil {
			out[name] = "1"
		} else {
			out[name] = *q.Value
		}
	}
	return out
}

func (n *Normalizer) typeName(typeID int) string {
	if name, ok := n.events[typeID]; ok {
		return name
	}
	return "Unknown Type"
}

// ShorterName abbreviates "Bukayo Saka" to "B. Saka". Single-token names
// pass through unchanged.
func ShorterName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}
	parts := strings.Fields(full)
	if len(parts) == 1 {
		return full
	}
	return string([]rune(parts[0])[0]) + ". " + parts[len(parts)-1]
}

func qualifierValues(quals []feed.RawQualifier) map[int64]string {
	out := make(map[int64]string, len(quals))
	for _, q := range quals {
		if q.Value != nil {
			out[q.QualifierID] = *q.Value
		} else {
			out[q.QualifierID] = "1"
		}
	}
	return out
}

func floatOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
