package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/logger"
	"github.com/julianstephens/streakquest/internal/models"
)

// SQLiteStore persists the game state blob in a single-row key-value table.
// The blob granularity is identical to the JSON store; SQLite only buys
// durable writes. Selected when the config path ends in ".db".
type SQLiteStore struct {
	path  string
	clock clock.Clock
	db    *sql.DB
}

func NewSQLiteStore(path string, clk clock.Clock) *SQLiteStore {
	return &SQLiteStore{
		path:  ExpandPath(path),
		clock: clk,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.write(models.DefaultGameStats(s.clock.Now()))
}

func (s *SQLiteStore) Load() (models.GameStats, error) {
	defaults := models.DefaultGameStats(s.clock.Now())

	if err := s.open(); err != nil {
		logger.Warn("Failed to open game database, starting fresh", "path", s.path, "error", err)
		return defaults, nil
	}

	var data string
	err := s.db.QueryRow(
		`SELECT value FROM game_state WHERE key = ?`, constants.StorageKey,
	).Scan(&data)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("Failed to read game state, starting fresh", "path", s.path, "error", err)
		}
		return defaults, nil
	}

	stats := defaults
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		logger.Warn("Game state is corrupt, starting fresh", "path", s.path, "error", err)
		return models.DefaultGameStats(s.clock.Now()), nil
	}

	return normalize(stats), nil
}

func (s *SQLiteStore) Save(stats models.GameStats) error {
	if err := s.open(); err != nil {
		return err
	}
	return s.write(stats)
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS game_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) write(stats models.GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to serialize game state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO game_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		constants.StorageKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	return nil
}
