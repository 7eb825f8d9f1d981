package game

import (
	"regexp"
	"strconv"
	"time"

	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/models"
)

var rewardAmount = regexp.MustCompile(`\d+`)

// ComputeProgress folds the full habit collection into aggregate progress.
// It is idempotent and total: it never consults previous progress state,
// so the result is always consistent with current habit data.
func ComputeProgress(habits []models.Habit, now time.Time) models.UserProgress {
	totalCompletions := 0
	for _, h := range habits {
		totalCompletions += h.TotalCompletions
	}
	baseXP := totalCompletions * constants.XPPerCompletion

	unlocked := []models.Milestone{}
	seen := make(map[string]bool)
	bonusXP := 0

	for _, h := range habits {
		for _, def := range models.Milestones {
			if h.LongestStreak < def.RequiredDays {
				continue
			}
			id := def.ID + "-" + h.ID
			if seen[id] {
				continue
			}
			seen[id] = true

			instance := def
			instance.ID = id
			instance.UnlockedAt = now.Format(time.RFC3339)
			unlocked = append(unlocked, instance)
			bonusXP += rewardBonus(def.Reward)
		}
	}

	totalXP := baseXP + bonusXP
	return models.UserProgress{
		TotalXP:            totalXP,
		Level:              totalXP/constants.XPPerLevel + 1,
		XPToNextLevel:      constants.XPPerLevel - totalXP%constants.XPPerLevel,
		UnlockedMilestones: unlocked,
	}
}

// Refresh recomputes the derived progress fields of a snapshot. Called on
// every load and after every habit mutation.
func Refresh(stats models.GameStats, now time.Time) models.GameStats {
	stats.UserProgress = ComputeProgress(stats.Habits, now)
	stats.LastUpdated = now
	return stats
}

// rewardBonus extracts the XP amount embedded in a reward string, e.g.
// "+50 XP Bonus" -> 50. Missing amounts count as zero.
func rewardBonus(reward string) int {
	match := rewardAmount.FindString(reward)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
