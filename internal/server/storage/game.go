package storage

import (
	"database/sql"
	"fmt"
)

// RecordNewGame asynchronously inserts a ledger row
func (s *Store) RecordNewGame(record GameRecord) {
	if record.Result == "" {
		record.Result = "ongoing"
	}
	s.enqueue("game record", func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO games (
			game_id, initial_layout,
			white_player_id, white_player_name,
			black_player_id, black_player_name,
			start_time_utc, result
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			record.GameID, record.InitialLayout,
			record.WhitePlayerID, record.WhitePlayerName,
			record.BlackPlayerID, record.BlackPlayerName,
			record.StartTimeUTC, record.Result,
		)
		return err
	})
}

// RecordResult asynchronously stores the outcome of a finished game
func (s *Store) RecordResult(record ResultRecord) {
	s.enqueue("game result", func(tx *sql.Tx) error {
		_, err := tx.Exec(`UPDATE games
			SET result = ?, final_layout = ?, captures = ?, finished_time_utc = ?
			WHERE game_id = ?`,
			record.Result, record.FinalLayout, record.Captures, record.FinishedTimeUTC,
			record.GameID,
		)
		return err
	})
}

// QueryGames retrieves ledger rows. Empty or "*" filters match everything;
// playerID matches either side.
func (s *Store) QueryGames(gameID, playerID string) ([]GameRecord, error) {
	query := `SELECT
		game_id, initial_layout,
		white_player_id, white_player_name,
		black_player_id, black_player_name,
		start_time_utc, result, final_layout, captures, finished_time_utc
	FROM games WHERE 1=1`

	var args []any
	if gameID != "" && gameID != "*" {
		query += " AND game_id = ?"
		args = append(args, gameID)
	}
	if playerID != "" && playerID != "*" {
		query += " AND (white_player_id = ? OR black_player_id = ?)"
		args = append(args, playerID, playerID)
	}
	query += " ORDER BY start_time_utc DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(
			&g.GameID, &g.InitialLayout,
			&g.WhitePlayerID, &g.WhitePlayerName,
			&g.BlackPlayerID, &g.BlackPlayerName,
			&g.StartTimeUTC, &g.Result, &g.FinalLayout, &g.Captures, &g.FinishedTimeUTC,
		); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return games, nil
}
