package storage

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/bytedance/sonic"

	"github.com/matchlens/go-opta-metrics/internal/model"
)

// MatchExists returns true if a feed with the given hash is already stored.
func (db *DB) MatchExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertMatch inserts a match record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertMatch(summary model.MatchSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO matches(hash, run_id, competition, match_date, home_team, away_team, home_code, away_code, home_score, away_score, status, event_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.FeedHash, summary.RunID, summary.Competition, summary.MatchDate,
		summary.HomeTeam, summary.AwayTeam, summary.HomeCode, summary.AwayCode,
		summary.HomeScore, summary.AwayScore, summary.Status, summary.EventCount,
	)
	return err
}

// InsertEvents bulk-inserts the normalized event table in a transaction.
func (db *DB) InsertEvents(feedHash string, events []model.Event) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO events(
			feed_hash, id, event_id, type_id, type_name,
			period, minute, second, timestamp,
			team_id, team_name, player_id, player_name, short_name,
			outcome, x, y, end_x, end_y,
			jersey, slot, is_starter, role,
			is_key_pass, is_assist, is_cross, is_long_ball, is_throw_in,
			qualifiers
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		quals, err := sonic.Marshal(e.Qualifiers)
		if err != nil {
			return fmt.Errorf("marshal qualifiers for event %d: %w", e.ID, err)
		}
		_, err = stmt.Exec(
			feedHash, e.ID, e.EventID, e.TypeID, e.TypeName,
			e.Period, e.Minute, e.Second, e.Timestamp,
			e.TeamID, e.TeamName, e.PlayerID, e.PlayerName, e.ShortName,
			e.Outcome.String(), nullFloat(e.X), nullFloat(e.Y), nullFloat(e.EndX), nullFloat(e.EndY),
			e.Jersey, e.Slot, boolInt(e.IsStarter), e.Role,
			boolInt(e.IsKeyPass), boolInt(e.IsAssist), boolInt(e.IsCross),
			boolInt(e.IsLongBall), boolInt(e.IsThrowIn),
			string(quals),
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

// InsertSequences bulk-inserts one detector's annotated rows in a transaction.
// Rows reference events by id; the event table must be stored first.
func (db *DB) InsertSequences(feedHash string, kind model.SequenceKind, team string, rows []model.SequenceRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO sequences(
			feed_hash, kind, team_name, sequence_id, ord, event_ref,
			trigger_type, trigger_zone, trigger_event_id, trigger_minute, trigger_second,
			sequence_outcome, pass_count, dominant_flank, shot_end_y
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	ord := 0
	lastSeq := -1
	for _, r := range rows {
		if r.SequenceID != lastSeq {
			lastSeq = r.SequenceID
			ord = 0
		}
		_, err = stmt.Exec(
			feedHash, string(kind), team, r.SequenceID, ord, r.ID,
			r.TriggerType, r.TriggerZone, r.TriggerEventID, r.TriggerMinute, r.TriggerSecond,
			r.SequenceOutcome, r.PassCount, r.DominantFlank, nullFloat(r.ShotEndY),
		)
		if err != nil {
			return fmt.Errorf("insert sequence row %d/%d: %w", r.SequenceID, ord, err)
		}
		ord++
	}
	return tx.Commit()
}

// InsertPlayerStats bulk-inserts player rollups in a transaction.
func (db *DB) InsertPlayerStats(feedHash string, stats []model.PlayerStats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_stats(
			feed_hash, player_id, player_name, short_name, team_name, jersey, role, is_starter,
			shots, goals, shot_assists, assists,
			total_passes, accurate_passes, prog_passes, passes_into_box, buildup_to_shot,
			tackles_won, tackles_lost, interceptions, clearances, ball_recoveries,
			aerials_won, aerials_lost, fouls_committed, fouls_won
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stats {
		_, err = stmt.Exec(
			feedHash, s.PlayerID, s.PlayerName, s.ShortName, s.TeamName, s.Jersey, s.Role, boolInt(s.IsStarter),
			s.Shots, s.Goals, s.ShotAssists, s.Assists,
			s.TotalPasses, s.AccuratePasses, s.ProgPasses, s.PassesIntoBox, s.BuildupToShot,
			s.TacklesWon, s.TacklesLost, s.Interceptions, s.Clearances, s.BallRecoveries,
			s.AerialsWon, s.AerialsLost, s.FoulsCommitted, s.FoulsWon,
		)
		if err != nil {
			return fmt.Errorf("insert player_stats for %s: %w", s.PlayerID, err)
		}
	}
	return tx.Commit()
}

// ListMatches returns all stored match summaries ordered by match_date desc.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT hash, run_id, competition, match_date, home_team, away_team, home_code, away_code, home_score, away_score, status, event_count
		FROM matches ORDER BY match_date DESC`)
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

// GetMatchByPrefix finds the first match whose hash starts with the given prefix.
func (db *DB) GetMatchByPrefix(prefix string) (*model.MatchSummary, error) {
	var s model.MatchSummary
	err := db.conn.QueryRow(`
		SELECT hash, run_id, competition, match_date, home_team, away_team, home_code, away_code, home_score, away_score, status, event_count
		FROM matches WHERE hash LIKE ? LIMIT 1`, prefix+"%").
		Scan(&s.FeedHash, &s.RunID, &s.Competition, &s.MatchDate,
			&s.HomeTeam, &s.AwayTeam, &s.HomeCode, &s.AwayCode,
			&s.HomeScore, &s.AwayScore, &s.Status, &s.EventCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetEvents returns the stored normalized event table for a feed hash in
// canonical order.
func (db *DB) GetEvents(feedHash string) ([]model.Event, error) {
	rows, err := db.conn.Query(`
		SELECT id, event_id, type_id, type_name,
		       period, minute, second, timestamp,
		       team_id, team_name, player_id, player_name, short_name,
		       outcome, x, y, end_x, end_y,
		       jersey, slot, is_starter, role,
		       is_key_pass, is_assist, is_cross, is_long_ball, is_throw_in,
		       qualifiers
		FROM events WHERE feed_hash = ?
		ORDER BY rowid`, feedHash)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		var outcome, quals string
		var x, y, endX, endY sql.NullFloat64
		var starter, keyPass, assist, cross, longBall, throwIn int
		if err := rows.Scan(
			&e.ID, &e.EventID, &e.TypeID, &e.TypeName,
			&e.Period, &e.Minute, &e.Second, &e.Timestamp,
			&e.TeamID, &e.TeamName, &e.PlayerID, &e.PlayerName, &e.ShortName,
			&outcome, &x, &y, &endX, &endY,
			&e.Jersey, &e.Slot, &starter, &e.Role,
			&keyPass, &assist, &cross, &longBall, &throwIn,
			&quals,
		); err != nil {
			return nil, err
		}
		e.Outcome = model.OutcomeFromString(outcome)
		e.X, e.Y, e.EndX, e.EndY = floatOrNaN(x), floatOrNaN(y), floatOrNaN(endX), floatOrNaN(endY)
		e.IsStarter = starter != 0
		e.IsKeyPass, e.IsAssist = keyPass != 0, assist != 0
		e.IsCross, e.IsLongBall, e.IsThrowIn = cross != 0, longBall != 0, throwIn != 0
		if err := sonic.Unmarshal([]byte(quals), &e.Qualifiers); err != nil {
			return nil, fmt.Errorf("unmarshal qualifiers for event %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetSequences returns one detector's stored rows for a feed hash, joined
// back against the event table.
func (db *DB) GetSequences(feedHash string, kind model.SequenceKind, team string) ([]model.SequenceRow, error) {
	events, err := db.GetEvents(feedHash)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	rows, err := db.conn.Query(`
		SELECT sequence_id, event_ref,
		       trigger_type, trigger_zone, trigger_event_id, trigger_minute, trigger_second,
		       sequence_outcome, pass_count, dominant_flank, shot_end_y
		FROM sequences
		WHERE feed_hash = ? AND kind = ? AND team_name = ?
		ORDER BY sequence_id, ord`, feedHash, string(kind), team)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SequenceRow
	for rows.Next() {
		var r model.SequenceRow
		var ref int64
		var shotEndY sql.NullFloat64
		if err := rows.Scan(
			&r.SequenceID, &ref,
			&r.TriggerType, &r.TriggerZone, &r.TriggerEventID, &r.TriggerMinute, &r.TriggerSecond,
			&r.SequenceOutcome, &r.PassCount, &r.DominantFlank, &shotEndY,
		); err != nil {
			return nil, err
		}
		e, ok := byID[ref]
		if !ok {
			return nil, fmt.Errorf("sequence row references missing event %d", ref)
		}
		r.Event = e
		r.ShotEndY = floatOrNaN(shotEndY)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetPlayerStats returns all player rollups for a feed hash, busiest
// passers first.
func (db *DB) GetPlayerStats(feedHash string) ([]model.PlayerStats, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, player_name, short_name, team_name, jersey, role, is_starter,
		       shots, goals, shot_assists, assists,
		       total_passes, accurate_passes, prog_passes, passes_into_box, buildup_to_shot,
		       tackles_won, tackles_lost, interceptions, clearances, ball_recoveries,
		       aerials_won, aerials_lost, fouls_committed, fouls_won
		FROM player_stats WHERE feed_hash = ?
		ORDER BY team_name, total_passes DESC`, feedHash)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerStats
	for rows.Next() {
		var s model.PlayerStats
		var starter int
		if err := rows.Scan(
			&s.PlayerID, &s.PlayerName, &s.ShortName, &s.TeamName, &s.Jersey, &s.Role, &starter,
			&s.Shots, &s.Goals, &s.ShotAssists, &s.Assists,
			&s.TotalPasses, &s.AccuratePasses, &s.ProgPasses, &s.PassesIntoBox, &s.BuildupToShot,
			&s.TacklesWon, &s.TacklesLost, &s.Interceptions, &s.Clearances, &s.BallRecoveries,
			&s.AerialsWon, &s.AerialsLost, &s.FoulsCommitted, &s.FoulsWon,
		); err != nil {
			return nil, err
		}
		s.FeedHash = feedHash
		s.IsStarter = starter != 0
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteMatch removes a match and its dependent rows.
func (db *DB) DeleteMatch(feedHash string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"player_stats", "sequences", "events"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE feed_hash = ?", feedHash); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	if _, err := tx.Exec("DELETE FROM matches WHERE hash = ?", feedHash); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return tx.Commit()
}

// QueryRaw runs an arbitrary read query and returns column names plus
// stringified rows, for the sql subcommand.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprint(t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullFloat maps NaN to NULL so SQLite round-trips missing coordinates.
func nullFloat(f float64) any {
	if math.IsNaN(f) {
		return nil
	}
	return f
}

func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
