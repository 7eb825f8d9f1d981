package game

import "github.com/julianstephens/streakquest/internal/models"

// NotificationEvent is the transient result of comparing two snapshots.
// It is advisory, rendered once and never persisted.
type NotificationEvent struct {
	XPGained         int
	LeveledUp        bool
	NewMilestones    []models.Milestone
	StreakMilestones []models.StreakMilestone
}

// Empty reports whether the event carries nothing worth showing.
func (e NotificationEvent) Empty() bool {
	return e.XPGained == 0 && !e.LeveledUp &&
		len(e.NewMilestones) == 0 && len(e.StreakMilestones) == 0
}

// DiffSnapshots compares a previous and a freshly recomputed snapshot and
// produces the notification event for the transition. XPGained may be
// negative when habits were deleted.
//
// A streak tier fires only when a habit's new current streak exactly equals
// the tier's day count. A streak that jumps past a tier in one update (bulk
// completion of historical days) skips that tier's notification; the
// longest-streak achievement scan in ComputeProgress is unaffected since
// it uses >= thresholds.
func DiffSnapshots(prev, next models.GameStats) NotificationEvent {
	event := NotificationEvent{
		XPGained:  next.UserProgress.TotalXP - prev.UserProgress.TotalXP,
		LeveledUp: next.UserProgress.Level > prev.UserProgress.Level,
	}

	prevUnlocked := make(map[string]bool, len(prev.UserProgress.UnlockedMilestones))
	for _, m := range prev.UserProgress.UnlockedMilestones {
		prevUnlocked[m.ID] = true
	}
	for _, m := range next.UserProgress.UnlockedMilestones {
		if !prevUnlocked[m.ID] {
			event.NewMilestones = append(event.NewMilestones, m)
		}
	}

	for _, habit := range next.Habits {
		old, ok := prev.FindHabit(habit.ID)
		if !ok || habit.CurrentStreak <= old.CurrentStreak {
			continue
		}
		for _, tier := range models.StreakMilestones {
			if tier.Days == habit.CurrentStreak {
				event.StreakMilestones = append(event.StreakMilestones, tier)
				break
			}
		}
	}

	return event
}
