package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/logger"
	"github.com/julianstephens/streakquest/internal/models"
)

// JSONStore persists the game state as a single JSON blob on disk. There
// are no partial writes and no schema versioning: the loader merges the
// stored blob over defaults so missing fields default sanely when the
// shape evolves.
type JSONStore struct {
	path  string
	clock clock.Clock
}

func NewJSONStore(configPath string, clk clock.Clock) *JSONStore {
	return &JSONStore{
		path:  ExpandPath(configPath),
		clock: clk,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.DefaultGameStats(s.clock.Now()))
}

func (s *JSONStore) Load() (models.GameStats, error) {
	defaults := models.DefaultGameStats(s.clock.Now())

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read game state, starting fresh", "path", s.path, "error", err)
		}
		return defaults, nil
	}

	// Unmarshal over defaults so fields absent from the stored blob keep
	// their default values.
	stats := defaults
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.Warn("Game state is corrupt, starting fresh", "path", s.path, "error", err)
		return models.DefaultGameStats(s.clock.Now()), nil
	}

	return normalize(stats), nil
}

func (s *JSONStore) Save(stats models.GameStats) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return s.write(stats)
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) write(stats models.GameStats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize game state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	return nil
}

// normalize ensures collections are non-nil after unmarshalling.
func normalize(stats models.GameStats) models.GameStats {
	if stats.Habits == nil {
		stats.Habits = []models.Habit{}
	}
	if stats.UserProgress.UnlockedMilestones == nil {
		stats.UserProgress.UnlockedMilestones = []models.Milestone{}
	}
	for i := range stats.Habits {
		if stats.Habits[i].Completions == nil {
			stats.Habits[i].Completions = []string{}
		}
	}
	return stats
}
