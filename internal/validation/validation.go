package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/streakquest/internal/constants"
)

// HabitName validates and normalizes a habit name. The core engine assumes
// validated input, so empty names are rejected here, before it is called.
func HabitName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("habit name cannot be empty")
	}
	if len(trimmed) > constants.MaxHabitNameLen {
		return "", fmt.Errorf("habit name cannot exceed %d characters", constants.MaxHabitNameLen)
	}
	return trimmed, nil
}

// Emoji normalizes a habit glyph, falling back to the default when blank.
func Emoji(emoji string) string {
	trimmed := strings.TrimSpace(emoji)
	if trimmed == "" {
		return constants.DefaultHabitEmoji
	}
	return trimmed
}

// Day validates a completion day string (YYYY-MM-DD). An empty input
// resolves to the given today.
func Day(day, today string) (string, error) {
	if day == "" {
		return today, nil
	}
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return day, nil
}
