package game

import (
	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/models"
)

// NextStreakMilestone returns the first notification tier above the given
// current streak, for progress display. ok is false past the last tier.
func NextStreakMilestone(current int) (models.StreakMilestone, bool) {
	for _, tier := range models.StreakMilestones {
		if tier.Days > current {
			return tier, true
		}
	}
	return models.StreakMilestone{}, false
}

// StreakAtRisk reports whether a live streak is about to break: the habit
// has a current streak but neither today nor yesterday is completed.
func StreakAtRisk(h models.Habit, today string) bool {
	if h.CurrentStreak == 0 {
		return false
	}
	return !h.CompletedOn(today) && !h.CompletedOn(clock.Yesterday(today))
}
