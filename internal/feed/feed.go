package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// Root is the decoded MA3 match event feed.
type Root struct {
	MatchInfo MatchInfo `json:"matchInfo"`
	LiveData  LiveData  `json:"liveData"`
}

type MatchInfo struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Week        string       `json:"week"`
	Contestants []Contestant `json:"contestant"`
	Competition Competition  `json:"competition"`
}

type Contestant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Code      string `json:"code"`
	Position  string `json:"position"`
}

type Competition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LiveData struct {
	MatchDetails MatchDetails `json:"matchDetails"`
	Events       []RawEvent   `json:"event"`
}

type MatchDetails struct {
	MatchStatus string   `json:"matchStatus"`
	Winner      string   `json:"winner"`
	Scores      Scores   `json:"scores"`
	Periods     []Period `json:"period"`
}

type Scores struct {
	Total Score `json:"total"`
	HT    Score `json:"ht"`
	FT    Score `json:"ft"`
}

type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Period struct {
	ID    int    `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// RawEvent is one event exactly as the feed carries it.
type RawEvent struct {
	ID           int64          `json:"id"`
	EventID      int            `json:"eventId"`
	TypeID       int            `json:"typeId"`
	PeriodID     int            `json:"periodId"`
	TimeMin      int            `json:"timeMin"`
	TimeSec      int            `json:"timeSec"`
	TimeStamp    string         `json:"timeStamp"`
	ContestantID string         `json:"contestantId"`
	PlayerID     string         `json:"playerId"`
	PlayerName   string         `json:"playerName"`
	Outcome      *int           `json:"outcome"`
	X            *float64       `json:"x"`
	Y            *float64       `json:"y"`
	Qualifiers   []RawQualifier `json:"qualifier"`
}

type RawQualifier struct {
	ID          int64   `json:"id"`
	QualifierID int64   `json:"qualifierId"`
	Value       *string `json:"value"`
}

// Clean strips everything outside the outermost JSON object. Feeds arrive
// wrapped in callback padding or with trailing garbage, so the cleaner keeps
// the substring from the first '{' through the last '}' and decodes that.
func Clean(raw []byte) (*Root, []byte, error) {
	s := string(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return nil, nil, fmt.Errorf("no JSON object found in feed")
	}
	body := []byte(s[start : end+1])

	var root Root
	if err := sonic.Unmarshal(body, &root); err != nil {
		return nil, nil, fmt.Errorf("decode feed: %w", err)
	}
	return &root, body, nil
}

// Load reads and cleans the feed file at path.
func Load(path string) (*Root, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read feed: %w", err)
	}
	root, body, err := Clean(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("clean %s: %w", path, err)
	}
	return root, body, nil
}

// Hash returns the sha256 hex digest of the cleaned feed body. Used as the
// stable match identity for idempotent storage.
func Hash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Home returns the home contestant, falling back to the first listed.
func (m MatchInfo) Home() Contestant { return m.side("home", 0) }

// Away returns the away contestant, falling back to the second listed.
func (m MatchInfo) Away() Contestant { return m.side("away", 1) }

func (m MatchInfo) side(position string, fallback int) Contestant {
	for _, c := range m.Contestants {
		if c.Position == position {
			return c
		}
	}
	if fallback < len(m.Contestants) {
		return m.Contestants[fallback]
	}
	return Contestant{}
}

// TeamName returns the contestant name for a contestant id, or the id itself
// when the feed does not list it.
func (m MatchInfo) TeamName(id string) string {
	for _, c := range m.Contestants {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// Summary extracts the stored per-match header from the feed.
func (r *Root) Summary(hash string) model.MatchSummary {
	home, away := r.MatchInfo.Home(), r.MatchInfo.Away()
	return model.MatchSummary{
		FeedHash:    hash,
		Competition: r.MatchInfo.Competition.Name,
		MatchDate:   strings.TrimSuffix(r.MatchInfo.Date, "Z"),
		HomeTeam:    home.Name,
		AwayTeam:    away.Name,
		HomeCode:    home.Code,
		AwayCode:    away.Code,
		HomeScore:   r.LiveData.MatchDetails.Scores.Total.Home,
		AwayScore:   r.LiveData.MatchDetails.Scores.Total.Away,
		Status:      r.LiveData.MatchDetails.MatchStatus,
		EventCount:  len(r.LiveData.Events),
	}
}
