package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Tables of different chats record rounds concurrently; one connection
	// keeps SQLite from answering "database is locked".
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

// dsn turns on foreign keys, keeping any parameters already in path.
func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		name TEXT PRIMARY KEY,
		balance REAL DEFAULT 0,
		wins INTEGER DEFAULT 0,
		losses INTEGER DEFAULT 0,
		blackjacks INTEGER DEFAULT 0,
		games INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		dealer_score INTEGER NOT NULL,
		dealer_net REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payouts (
		round_id TEXT NOT NULL REFERENCES rounds(id),
		name TEXT NOT NULL REFERENCES players(name),
		wager REAL NOT NULL,
		score INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		amount REAL NOT NULL,
		PRIMARY KEY (round_id, name)
	);

	CREATE INDEX IF NOT EXISTS idx_players_balance ON players(balance);
	CREATE INDEX IF NOT EXISTS idx_players_games ON players(games);
	`

	_, err := db.Exec(schema)
	return err
}
