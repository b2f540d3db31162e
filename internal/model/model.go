package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Outcome is the feed's success flag for an event.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeUnsuccessful
	OutcomeSuccessful
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccessful:
		return "Successful"
	case OutcomeUnsuccessful:
		return "Unsuccessful"
	default:
		return "Unknown"
	}
}

// OutcomeFromFlag maps the feed's raw outcome value (0/1, possibly absent)
// to an Outcome.
func OutcomeFromFlag(v *int) Outcome {
	if v == nil {
		return OutcomeUnknown
	}
	switch *v {
	case 0:
		return OutcomeUnsuccessful
	case 1:
		return OutcomeSuccessful
	default:
		return OutcomeUnknown
	}
}

// OutcomeFromString parses the stored string form back to an Outcome.
func OutcomeFromString(s string) Outcome {
	switch s {
	case "Successful":
		return OutcomeSuccessful
	case "Unsuccessful":
		return OutcomeUnsuccessful
	default:
		return OutcomeUnknown
	}
}

// ---- Normalized event rows ----

// Event is one row of the normalized match event table. Coordinates are in
// Opta units (0-100 along both axes, attacking left to right for the acting
// team). Missing coordinates are NaN.
type Event struct {
	ID        int64
	EventID   int
	TypeID    int
	TypeName  string
	Period    int
	Minute    int
	Second    int
	Timestamp string

	TeamID     string
	TeamName   string
	PlayerID   string
	PlayerName string
	ShortName  string

	Outcome Outcome

	X, Y       float64
	EndX, EndY float64

	Jersey    int
	Slot      int
	IsStarter bool
	Role      string

	IsKeyPass  bool
	IsAssist   bool
	IsCross    bool
	IsLongBall bool
	IsThrowIn  bool

	// Qualifiers holds the decoded qualifier columns by human-readable name.
	// Flag qualifiers carry the value "1".
	Qualifiers map[string]string
}

// Qualifier returns the decoded qualifier value by name.
func (e *Event) Qualifier(name string) (string, bool) {
	v, ok := e.Qualifiers[name]
	return v, ok
}

// HasFlag reports whether the named qualifier is present on the event.
func (e *Event) HasFlag(name string) bool {
	_, ok := e.Qualifiers[name]
	return ok
}

// QualifierFloat parses the named qualifier as a float. Returns NaN when the
// qualifier is absent or not numeric.
func (e *Event) QualifierFloat(name string) float64 {
	v, ok := e.Qualifiers[name]
	if !ok {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// TotalSeconds returns the event clock in seconds.
func (e *Event) TotalSeconds() int {
	return e.Minute*60 + e.Second
}

// Clock formats the event time as mm:ss.
func (e *Event) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.Minute, e.Second)
}

// IsPass reports whether the event is a Pass row.
func (e *Event) IsPass() bool { return e.TypeName == "Pass" }

// Successful reports Outcome == OutcomeSuccessful.
func (e *Event) Successful() bool { return e.Outcome == OutcomeSuccessful }

// Unsuccessful reports Outcome == OutcomeUnsuccessful.
func (e *Event) Unsuccessful() bool { return e.Outcome == OutcomeUnsuccessful }

// ---- Sequence tables ----

// SequenceKind names the detector that produced a sequence table.
type SequenceKind string

const (
	SequenceShot                SequenceKind = "shot"
	SequenceBuildup             SequenceKind = "buildup"
	SequenceDefensiveTransition SequenceKind = "defensive_transition"
	SequenceOffensiveTransition SequenceKind = "offensive_transition"
	SequenceSetPiece            SequenceKind = "set_piece"
	SequenceBuildupPhase        SequenceKind = "buildup_phase"
)

// SequenceRow is one event inside a detected sequence, annotated with the
// sequence-level context shared by every row of that sequence.
type SequenceRow struct {
	Event

	SequenceID int

	// Trigger context: what started the sequence.
	TriggerType    string
	TriggerZone    string
	TriggerEventID int64
	TriggerMinute  int
	TriggerSecond  int

	// SequenceOutcome classifies how the sequence ended.
	SequenceOutcome string

	// PassCount is the number of passes played by the team in possession
	// during the sequence.
	PassCount int

	// DominantFlank is the pitch channel most of the sequence occupied.
	DominantFlank string

	// ShotEndY carries the goal-mouth y coordinate for shot rows.
	ShotEndY float64
}

// ---- Stored match records ----

// MatchSummary is the stored per-match header row.
type MatchSummary struct {
	FeedHash    string
	RunID       string
	Competition string
	MatchDate   string
	HomeTeam    string
	AwayTeam    string
	HomeCode    string
	AwayCode    string
	HomeScore   int
	AwayScore   int
	Status      string
	EventCount  int
}

// Score formats the final score as "2-1".
func (m MatchSummary) Score() string {
	return fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore)
}

// PlayerStats is the per-player rollup computed from the normalized table.
type PlayerStats struct {
	FeedHash   string
	PlayerID   string
	PlayerName string
	ShortName  string
	TeamName   string
	Jersey     int
	Role       string
	IsStarter  bool

	Shots          int
	Goals          int
	ShotAssists    int
	Assists        int
	TotalPasses    int
	AccuratePasses int
	ProgPasses     int
	PassesIntoBox  int
	BuildupToShot  int

	TacklesWon     int
	TacklesLost    int
	Interceptions  int
	Clearances     int
	BallRecoveries int
	AerialsWon     int
	AerialsLost    int
	FoulsCommitted int
	FoulsWon       int
}

// PassPct returns pass completion as a percentage.
func (p PlayerStats) PassPct() float64 {
	if p.TotalPasses == 0 {
		return 0
	}
	return float64(p.AccuratePasses) / float64(p.TotalPasses) * 100
}
