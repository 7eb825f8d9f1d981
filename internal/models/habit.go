package models

import "time"

// Habit represents a tracked habit and its derived streak fields.
// Completions holds distinct calendar days (YYYY-MM-DD); the streak and
// completion counters are always recomputed from it, never patched.
type Habit struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Emoji            string    `json:"emoji"`
	CreatedAt        time.Time `json:"createdAt"`
	Completions      []string  `json:"completions"`
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	TotalCompletions int       `json:"totalCompletions"`
}

// CompletedOn reports whether the habit has a completion recorded for the
// given day (YYYY-MM-DD).
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.Completions {
		if d == day {
			return true
		}
	}
	return false
}
