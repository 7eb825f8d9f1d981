package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/streakquest/internal/models"
)

type MilestonesCmd struct {
	All bool `help:"Include locked achievement tiers."`
}

func (c *MilestonesCmd) Run(ctx *Context) error {
	stats, err := ctx.LoadStats()
	if err != nil {
		return err
	}

	unlocked := stats.UserProgress.UnlockedMilestones
	if len(unlocked) == 0 {
		fmt.Println("No achievements unlocked yet. Keep your streaks going!")
	} else {
		fmt.Printf("Unlocked achievements (%d):\n\n", len(unlocked))
		for _, m := range unlocked {
			habitName := habitNameForMilestone(stats, m)
			fmt.Printf("  %s %s [%s] %s\n", m.Emoji, m.Name, habitName, m.Reward)
		}
	}

	if c.All {
		fmt.Println("\nAchievement tiers:")
		for _, def := range models.Milestones {
			fmt.Printf("  %s %-20s %3d days  %s\n", def.Emoji, def.Name, def.RequiredDays, def.Reward)
		}
		fmt.Println("\nStreak milestones:")
		for _, tier := range models.StreakMilestones {
			fmt.Printf("  %s %-20s %3d days  +%d XP\n", tier.Emoji, tier.Title, tier.Days, tier.XPBonus)
		}
	}

	return nil
}

// habitNameForMilestone resolves the habit a milestone instance was
// unlocked by, via the "<definitionID>-<habitID>" id synthesis.
func habitNameForMilestone(stats models.GameStats, m models.Milestone) string {
	for _, h := range stats.Habits {
		if strings.HasSuffix(m.ID, "-"+h.ID) {
			return h.Name
		}
	}
	return "unknown habit"
}
