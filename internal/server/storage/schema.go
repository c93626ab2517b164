package storage

import (
	"database/sql"
	"time"
)

// GameRecord is one row of the games ledger. The result columns stay empty
// until the game finishes.
type GameRecord struct {
	GameID          string       `db:"game_id"`
	InitialLayout   string       `db:"initial_layout"`
	WhitePlayerID   string       `db:"white_player_id"`
	WhitePlayerName string       `db:"white_player_name"`
	BlackPlayerID   string       `db:"black_player_id"`
	BlackPlayerName string       `db:"black_player_name"`
	StartTimeUTC    time.Time    `db:"start_time_utc"`
	Result          string       `db:"result"` // "ongoing", "white wins", "black wins"
	FinalLayout     string       `db:"final_layout"`
	Captures        int          `db:"captures"`
	FinishedTimeUTC sql.NullTime `db:"finished_time_utc"`
}

// ResultRecord closes a ledger row
type ResultRecord struct {
	GameID          string
	Result          string
	FinalLayout     string
	Captures        int
	FinishedTimeUTC time.Time
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	initial_layout TEXT NOT NULL,
	white_player_id TEXT NOT NULL,
	white_player_name TEXT NOT NULL DEFAULT '',
	black_player_id TEXT NOT NULL,
	black_player_name TEXT NOT NULL DEFAULT '',
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	result TEXT NOT NULL DEFAULT 'ongoing' CHECK(result IN ('ongoing', 'white wins', 'black wins')),
	final_layout TEXT NOT NULL DEFAULT '',
	captures INTEGER NOT NULL DEFAULT 0,
	finished_time_utc DATETIME
);

CREATE INDEX IF NOT EXISTS idx_games_white_player ON games(white_player_id);
CREATE INDEX IF NOT EXISTS idx_games_black_player ON games(black_player_id);
CREATE INDEX IF NOT EXISTS idx_games_result ON games(result);
`
