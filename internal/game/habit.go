package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/streakquest/internal/models"
)

// NewHabit produces a fresh habit with zeroed streak fields. The caller
// validates the name before calling; see the validation package.
func NewHabit(name, emoji string, now time.Time) models.Habit {
	return models.Habit{
		ID:          fmt.Sprintf("habit-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Name:        name,
		Emoji:       emoji,
		CreatedAt:   now,
		Completions: []string{},
	}
}

// ToggleCompletion returns a copy of the habit with the given day recorded
// or removed. Streak fields are recomputed from the resulting set; the
// longest streak is monotonic, so removing a completion never shrinks a
// previously recorded longest streak. The input habit is never mutated.
func ToggleCompletion(h models.Habit, day string, completed bool, today string) models.Habit {
	completions := make([]string, 0, len(h.Completions)+1)
	for _, d := range h.Completions {
		if d != day {
			completions = append(completions, d)
		}
	}
	if completed {
		completions = append(completions, day)
	}

	streaks := ComputeStreak(completions, today)

	h.Completions = completions
	h.CurrentStreak = streaks.Current
	h.LongestStreak = max(h.LongestStreak, streaks.Longest)
	h.TotalCompletions = len(completions)
	return h
}

// RenameHabit replaces the habit's name and glyph. Streak fields are left
// untouched.
func RenameHabit(h models.Habit, name, emoji string) models.Habit {
	h.Name = name
	h.Emoji = emoji
	return h
}
