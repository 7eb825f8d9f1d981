package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/streakquest/internal/models"
)

// Provider is the persistence capability handed to the application root.
// Load never fails hard: a missing or unreadable blob falls back to default
// state so the app always starts; Save failures are returned for the caller
// to log and swallow, with in-memory state staying authoritative.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (models.GameStats, error)
	Save(models.GameStats) error
	Close() error

	// Utils
	GetConfigPath() string
}

// ExpandPath resolves a leading ~/ against the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
