package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// TeamRecord holds a team's results across a set of stored matches.
type TeamRecord struct {
	Team         string
	Matches      int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// OutcomeCount is one sequence outcome with its frequency.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// PlayerTotals holds summed rollup stats for one player across matches.
type PlayerTotals struct {
	PlayerID    string
	PlayerName  string
	TeamName    string
	Matches     int
	Goals       int
	Assists     int
	Shots       int
	ShotAssists int
	Passes      int
	Accurate    int
	ProgPasses  int
	TacklesWon  int
}

// TeamMatches returns stored matches involving the team on or after the
// given date, most recent first.
func (db *DB) TeamMatches(team string, since time.Time) ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT hash, run_id, competition, match_date, home_team, away_team, home_code, away_code, home_score, away_score, status, event_count
		FROM matches
		WHERE (home_team = ? OR away_team = ?)
		  AND match_date >= ?
		ORDER BY match_date DESC`,
		team, team, since.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchSummary
	for rows.Next() {
		var s model.MatchSummary
		if err := rows.Scan(&s.FeedHash, &s.RunID, &s.Competition, &s.MatchDate,
			&s.HomeTeam, &s.AwayTeam, &s.HomeCode, &s.AwayCode,
			&s.HomeScore, &s.AwayScore, &s.Status, &s.EventCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TeamRecordFor aggregates a team's results across the given feed hashes.
func (db *DB) TeamRecordFor(team string, feedHashes []string) (TeamRecord, error) {
	rec := TeamRecord{Team: team}
	if len(feedHashes) == 0 {
		return rec, nil
	}
	ph := placeholders(len(feedHashes))
	query := fmt.Sprintf(`
		SELECT COUNT(*),
		  COALESCE(SUM(CASE WHEN (home_team = ? AND home_score > away_score)
		                      OR (away_team = ? AND away_score > home_score) THEN 1 ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN home_score = away_score THEN 1 ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN (home_team = ? AND home_score < away_score)
		                      OR (away_team = ? AND away_score < home_score) THEN 1 ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN home_team = ? THEN home_score ELSE away_score END), 0),
		  COALESCE(SUM(CASE WHEN home_team = ? THEN away_score ELSE home_score END), 0)
		FROM matches
		WHERE (home_team = ? OR away_team = ?)
		  AND hash IN (%s)`, ph)

	// Six team placeholders in the CASE expressions, two in the WHERE.
	args := make([]any, 0, len(feedHashes)+8)
	for i := 0; i < 8; i++ {
		args = append(args, team)
	}
	for _, h := range feedHashes {
		args = append(args, h)
	}

	err := db.conn.QueryRow(query, args...).Scan(
		&rec.Matches, &rec.Wins, &rec.Draws, &rec.Losses,
		&rec.GoalsFor, &rec.GoalsAgainst)
	return rec, err
}

// TeamSequenceOutcomes counts how a team's sequences of one kind ended
// across the given feed hashes, most common first. Only the closing row of
// each sequence carries the outcome that gets counted.
func (db *DB) TeamSequenceOutcomes(team string, kind model.SequenceKind, feedHashes []string) ([]OutcomeCount, error) {
	if len(feedHashes) == 0 {
		return nil, nil
	}
	ph := placeholders(len(feedHashes))
	args := []any{team, string(kind)}
	for _, h := range feedHashes {
		args = append(args, h)
	}

	query := fmt.Sprintf(`
		SELECT sequence_outcome, COUNT(DISTINCT feed_hash || '/' || sequence_id)
		FROM sequences
		WHERE team_name = ?
		  AND kind = ?
		  AND feed_hash IN (%s)
		  AND sequence_outcome != ''
		GROUP BY sequence_outcome
		ORDER BY COUNT(DISTINCT feed_hash || '/' || sequence_id) DESC, sequence_outcome`, ph)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Outcome, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TeamPlayerTotals sums per-player rollups for a team across the given
// feed hashes, most active passers first.
func (db *DB) TeamPlayerTotals(team string, feedHashes []string) ([]PlayerTotals, error) {
	if len(feedHashes) == 0 {
		return nil, nil
	}
	ph := placeholders(len(feedHashes))
	args := []any{team}
	for _, h := range feedHashes {
		args = append(args, h)
	}

	query := fmt.Sprintf(`
		SELECT player_id, MAX(player_name), team_name, COUNT(DISTINCT feed_hash),
		       SUM(goals), SUM(assists), SUM(shots), SUM(shot_assists),
		       SUM(total_passes), SUM(accurate_passes), SUM(prog_passes), SUM(tackles_won)
		FROM player_stats
		WHERE team_name = ?
		  AND feed_hash IN (%s)
		GROUP BY player_id
		ORDER BY SUM(total_passes) DESC`, ph)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerTotals
	for rows.Next() {
		var p PlayerTotals
		if err := rows.Scan(
			&p.PlayerID, &p.PlayerName, &p.TeamName, &p.Matches,
			&p.Goals, &p.Assists, &p.Shots, &p.ShotAssists,
			&p.Passes, &p.Accurate, &p.ProgPasses, &p.TacklesWon,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// placeholders returns a comma-separated string of n "?" for SQL IN clauses,
// e.g. placeholders(3) → "?,?,?".
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
