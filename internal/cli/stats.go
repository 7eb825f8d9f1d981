package cli

import (
	"fmt"

	"github.com/julianstephens/streakquest/internal/game"
	"github.com/julianstephens/streakquest/internal/tui"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := ctx.LoadStats()
	if err != nil {
		return err
	}

	progress := stats.UserProgress
	fmt.Printf("Level %d\n", progress.Level)
	fmt.Printf("%s  %d XP to next level\n", tui.XPBar(progress, 20), progress.XPToNextLevel)
	fmt.Printf("Total XP: %d\n", progress.TotalXP)
	fmt.Printf("Achievements unlocked: %d\n\n", len(progress.UnlockedMilestones))

	if len(stats.Habits) == 0 {
		fmt.Println("No habits yet.")
		return nil
	}

	today := ctx.Clock.Today()
	bestStreak := 0
	for _, h := range stats.Habits {
		if h.CurrentStreak > bestStreak {
			bestStreak = h.CurrentStreak
		}
	}

	fmt.Printf("Habits: %d, best current streak: %d days\n", len(stats.Habits), bestStreak)
	if next, ok := game.NextStreakMilestone(bestStreak); ok {
		fmt.Printf("Next streak milestone: %s %s at day %d (+%d XP)\n",
			next.Emoji, next.Title, next.Days, next.XPBonus)
	}

	atRisk := 0
	for _, h := range stats.Habits {
		if game.StreakAtRisk(h, today) {
			atRisk++
			fmt.Printf("⚠ %q streak of %d days is at risk, complete it today!\n", h.Name, h.CurrentStreak)
		}
	}
	if atRisk == 0 {
		fmt.Println("No streaks at risk.")
	}

	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	stats, err := ctx.LoadStats()
	if err != nil {
		return err
	}

	if len(stats.Habits) == 0 {
		fmt.Println("No habits found. Add one with 'streakquest habit add <name>'.")
		return nil
	}

	today := ctx.Clock.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	for _, h := range stats.Habits {
		status := "[ ]"
		if h.CompletedOn(today) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s %s\n", status, h.Emoji, h.Name)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(stats.Habits))
	return nil
}
