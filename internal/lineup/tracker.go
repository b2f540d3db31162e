package lineup

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Event type ids the lineup tracker cares about.
const (
	TypeLineup       = 34
	TypeSubstitution = 19
)

// Qualifier ids carried by lineup/formation events (typeId 34).
const (
	QIDPlayerIDs   = 30
	QIDJerseyNums  = 59
	QIDRoleCodes   = 44
	QIDFormationID = 130
	QIDPositions   = 131
)

// PlayerMeta is a player's entry in the initial lineup. Jersey, slot and
// starter status come from the first lineup event and never change; only the
// team formation evolves during the match.
type PlayerMeta struct {
	Jersey    int
	Slot      int
	RoleCode  int
	IsStarter bool
}

// Tracker maintains per-team formation state and the immutable initial
// lineup metadata extracted from typeId 34 events.
type Tracker struct {
	log        *zap.Logger
	formations map[string]int                   // team id -> active formation id
	players    map[string]map[string]PlayerMeta // team id -> player id -> meta
	seeded     map[string]bool
}

// NewTracker returns an empty Tracker.
func NewTracker(log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		log:        log,
		formations: make(map[string]int),
		players:    make(map[string]map[string]PlayerMeta),
		seeded:     make(map[string]bool),
	}
}

// Seed consumes the first lineup event seen for a team: it records the
// initial formation and builds the immutable player metadata. Later calls
// for an already seeded team are ignored.
func (t *Tracker) Seed(teamID string, qvals map[int64]string) {
	if teamID == "" || t.seeded[teamID] {
		return
	}
	formationID, ok := parseFormation(qvals)
	if !ok {
		return
	}
	t.seeded[teamID] = true
	t.formations[teamID] = formationID

	ids := splitList(qvals[QIDPlayerIDs])
	jerseys := splitList(qvals[QIDJerseyNums])
	slots := splitList(qvals[QIDPositions])
	roles := splitList(qvals[QIDRoleCodes])
	if len(ids) == 0 {
		t.log.Warn("lineup event carries no player list", zap.String("team", teamID))
		return
	}
	if len(jerseys) != len(ids) || len(slots) != len(ids) || len(roles) != len(ids) {
		t.log.Warn("lineup qualifier lists have mismatched lengths, skipping lineup seed",
			zap.String("team", teamID),
			zap.Int("players", len(ids)),
			zap.Int("jerseys", len(jerseys)),
			zap.Int("positions", len(slots)),
			zap.Int("roles", len(roles)))
		return
	}

	meta := make(map[string]PlayerMeta, len(ids))
	for i, pid := range ids {
		slot := atoiOrZero(slots[i])
		meta[pid] = PlayerMeta{
			Jersey:    atoiOrZero(jerseys[i]),
			Slot:      slot,
			RoleCode:  atoiOrZero(roles[i]),
			IsStarter: slot >= 1 && slot <= 11,
		}
	}
	t.players[teamID] = meta
}

// Observe consumes a lineup/formation event mid-scan and updates the team's
// active formation. Initial player metadata is never rewritten.
func (t *Tracker) Observe(teamID string, qvals map[int64]string) {
	if teamID == "" {
		return
	}
	if formationID, ok := parseFormation(qvals); ok {
		t.formations[teamID] = formationID
	}
}

// Formation returns the team's active formation id.
func (t *Tracker) Formation(teamID string) (int, bool) {
	f, ok := t.formations[teamID]
	return f, ok
}

// Player returns the initial lineup metadata for a player.
func (t *Tracker) Player(teamID, playerID string) (PlayerMeta, bool) {
	m, ok := t.players[teamID][playerID]
	return m, ok
}

// Resolve returns the player's lineup metadata together with the positional
// role implied by the team's active formation. Unknown players and
// substitutes resolve to RoleSubUnknown.
func (t *Tracker) Resolve(teamID, playerID string) (PlayerMeta, string) {
	meta, ok := t.players[teamID][playerID]
	if !ok {
		return PlayerMeta{}, RoleSubUnknown
	}
	if !meta.IsStarter {
		return meta, RoleSubUnknown
	}
	formation, ok := t.formations[teamID]
	if !ok {
		return meta, RoleUnknownFormation
	}
	return meta, RoleFor(formation, meta.Slot)
}

func parseFormation(qvals map[int64]string) (int, bool) {
	raw, ok := qvals[QIDFormationID]
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
