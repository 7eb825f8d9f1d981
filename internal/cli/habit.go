package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/game"
	"github.com/julianstephens/streakquest/internal/models"
	"github.com/julianstephens/streakquest/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with streaks."`
	Done   HabitDoneCmd   `cmd:"" help:"Record a completion for a day."`
	Undo   HabitUndoCmd   `cmd:"" help:"Remove a completion for a day."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit or change its emoji."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit permanently."`
	Log    HabitLogCmd    `cmd:"" help:"Show completion history (ASCII grid)."`
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Emoji string `help:"Emoji glyph for the habit." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	name, err := validation.HabitName(c.Name)
	if err != nil {
		return err
	}
	emoji := validation.Emoji(c.Emoji)

	return ctx.Apply(func(stats models.GameStats) (models.GameStats, error) {
		if _, ok := stats.FindHabitByName(name); ok {
			return stats, fmt.Errorf("habit with name %q already exists", name)
		}
		habit := game.NewHabit(name, emoji, ctx.Clock.Now())
		stats.Habits = append(stats.Habits, habit)
		fmt.Printf("Added habit: %s %s\n", habit.Emoji, habit.Name)
		return stats, nil
	})
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	stats, err := ctx.LoadStats()
	if err != nil {
		return err
	}

	if len(stats.Habits) == 0 {
		fmt.Println("No habits found. Add one with 'streakquest habit add <name>'.")
		return nil
	}

	today := ctx.Clock.Today()
	for _, h := range stats.Habits {
		risk := ""
		if game.StreakAtRisk(h, today) {
			risk = "  ⚠ streak at risk"
		}
		fmt.Printf("%s %-20s streak %d (best %d), %d completions%s\n",
			h.Emoji, h.Name, h.CurrentStreak, h.LongestStreak, h.TotalCompletions, risk)
	}
	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	return toggle(ctx, c.Name, c.Date, true)
}

type HabitUndoCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitUndoCmd) Run(ctx *Context) error {
	return toggle(ctx, c.Name, c.Date, false)
}

func toggle(ctx *Context, name, date string, completed bool) error {
	day, err := validation.Day(date, ctx.Clock.Today())
	if err != nil {
		return err
	}

	return ctx.Apply(func(stats models.GameStats) (models.GameStats, error) {
		for i, h := range stats.Habits {
			if h.Name != name {
				continue
			}
			stats.Habits[i] = game.ToggleCompletion(h, day, completed, ctx.Clock.Today())
			if completed {
				fmt.Printf("Marked %q done for %s\n", name, day)
			} else {
				fmt.Printf("Unmarked %q for %s\n", name, day)
			}
			return stats, nil
		}
		return stats, fmt.Errorf("habit %q not found", name)
	})
}

type HabitRenameCmd struct {
	Name     string `arg:"" help:"Current habit name."`
	NewName  string `help:"New habit name." default:""`
	NewEmoji string `help:"New emoji glyph." default:""`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	if c.NewName == "" && c.NewEmoji == "" {
		return fmt.Errorf("nothing to change: pass --new-name and/or --new-emoji")
	}

	return ctx.Apply(func(stats models.GameStats) (models.GameStats, error) {
		for i, h := range stats.Habits {
			if h.Name != c.Name {
				continue
			}
			name := h.Name
			if c.NewName != "" {
				validated, err := validation.HabitName(c.NewName)
				if err != nil {
					return stats, err
				}
				name = validated
			}
			emoji := h.Emoji
			if c.NewEmoji != "" {
				emoji = validation.Emoji(c.NewEmoji)
			}
			stats.Habits[i] = game.RenameHabit(h, name, emoji)
			fmt.Printf("Updated habit: %s %s\n", emoji, name)
			return stats, nil
		}
		return stats, fmt.Errorf("habit %q not found", c.Name)
	})
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	return ctx.Apply(func(stats models.GameStats) (models.GameStats, error) {
		for i, h := range stats.Habits {
			if h.Name != c.Name {
				continue
			}
			stats.Habits = append(stats.Habits[:i], stats.Habits[i+1:]...)
			fmt.Printf("Deleted habit: %s\n", c.Name)
			return stats, nil
		}
		return stats, fmt.Errorf("habit %q not found", c.Name)
	})
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", c.Days)
	}

	stats, err := ctx.LoadStats()
	if err != nil {
		return err
	}

	habits := stats.Habits
	if c.Habit != "" {
		h, ok := stats.FindHabitByName(c.Habit)
		if !ok {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{h}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Clock.Today()
	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(pad("Habit", maxNameLen))
	for i := c.Days - 1; i >= 0; i-- {
		day := clock.DaysAgo(today, i)
		fmt.Printf(" %5s", day[5:7]+"/"+day[8:10])
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	fmt.Println(strings.Repeat("------", c.Days))

	for _, h := range habits {
		fmt.Print(pad(h.Name, maxNameLen))
		for i := c.Days - 1; i >= 0; i-- {
			mark := "·"
			if h.CompletedOn(clock.DaysAgo(today, i)) {
				mark = "✓"
			}
			fmt.Printf(" %5s", mark)
		}
		fmt.Println()
	}

	return nil
}

func pad(name string, width int) string {
	if len(name) > width {
		if width >= 5 {
			return name[:width-3] + "..."
		}
		return name[:width]
	}
	return name + strings.Repeat(" ", width-len(name))
}
