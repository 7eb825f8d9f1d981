package game

import (
	"sort"
	"time"

	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/models"
)

// ComputeStreak derives current and longest streak lengths from a set of
// completion days (YYYY-MM-DD). Input may be unordered and may contain
// duplicates; unparseable entries are ignored. The current streak is only
// non-zero when the most recent day is today or yesterday relative to the
// given evaluation day.
func ComputeStreak(days []string, today string) models.StreakResult {
	parsed := parseDays(days)
	if len(parsed) == 0 {
		return models.StreakResult{}
	}

	have := make(map[string]bool, len(parsed))
	for _, d := range parsed {
		have[d.Format(constants.DateFormat)] = true
	}

	current := 0
	anchor := ""
	if have[today] {
		anchor = today
	} else if y := clock.Yesterday(today); have[y] {
		anchor = y
	}
	if anchor != "" {
		for day := anchor; have[day]; day = clock.Yesterday(day) {
			current++
		}
	}

	// Single forward pass over ascending days: a gap of exactly one day
	// extends the run, anything else starts a new one.
	longest := 1
	run := 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i].Sub(parsed[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return models.StreakResult{Current: current, Longest: longest}
}

// parseDays returns the distinct parseable days sorted ascending.
func parseDays(days []string) []time.Time {
	seen := make(map[string]bool, len(days))
	parsed := make([]time.Time, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		t, err := time.Parse(constants.DateFormat, d)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })
	return parsed
}
