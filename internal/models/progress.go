package models

import "time"

// StreakResult is the output of a streak computation over one habit's
// completion history.
type StreakResult struct {
	Current int
	Longest int
}

// UserProgress is the aggregate game state derived from the full habit
// collection. It is recomputed wholesale on every load and mutation.
type UserProgress struct {
	TotalXP            int         `json:"totalXP"`
	Level              int         `json:"level"`
	XPToNextLevel      int         `json:"xpToNextLevel"`
	UnlockedMilestones []Milestone `json:"unlockedMilestones"`
}

// GameStats is the aggregate root and the entire persisted unit: one blob,
// no partial writes.
type GameStats struct {
	Habits       []Habit      `json:"habits"`
	UserProgress UserProgress `json:"userProgress"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}

// DefaultGameStats returns the fresh state used on first run and as the
// fallback when the persisted blob is missing or unreadable.
func DefaultGameStats(now time.Time) GameStats {
	return GameStats{
		Habits: []Habit{},
		UserProgress: UserProgress{
			TotalXP:            0,
			Level:              1,
			XPToNextLevel:      25,
			UnlockedMilestones: []Milestone{},
		},
		LastUpdated: now,
	}
}

// Clone copies the habit collection so the result can be mutated without
// aliasing the receiver. Completion slices inside each habit stay shared;
// they are never modified in place, only replaced wholesale.
func (s GameStats) Clone() GameStats {
	habits := make([]Habit, len(s.Habits))
	copy(habits, s.Habits)
	s.Habits = habits
	return s
}

// FindHabit returns the habit with the given id, if present.
func (s GameStats) FindHabit(id string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// FindHabitByName returns the first habit with the given name, if present.
func (s GameStats) FindHabitByName(name string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return Habit{}, false
}
