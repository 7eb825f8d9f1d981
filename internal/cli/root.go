package cli

import (
	"fmt"

	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/game"
	"github.com/julianstephens/streakquest/internal/logger"
	"github.com/julianstephens/streakquest/internal/models"
	"github.com/julianstephens/streakquest/internal/storage"
)

type Context struct {
	Store storage.Provider
	Clock clock.Clock
}

// LoadStats loads the persisted snapshot and recomputes its derived
// progress fields, so callers always see progress consistent with current
// habit data.
func (c *Context) LoadStats() (models.GameStats, error) {
	stats, err := c.Store.Load()
	if err != nil {
		return models.GameStats{}, err
	}
	return game.Refresh(stats, c.Clock.Now()), nil
}

// Apply runs a mutation against the loaded snapshot, recomputes progress,
// prints the notification event for the transition, and saves. Save
// failures are logged and swallowed: in-memory state stays authoritative
// for the invocation and the command still succeeds.
func (c *Context) Apply(mutate func(models.GameStats) (models.GameStats, error)) error {
	event, err := c.apply(mutate)
	if err != nil {
		return err
	}
	PrintEvent(event)
	return nil
}

func (c *Context) apply(mutate func(models.GameStats) (models.GameStats, error)) (game.NotificationEvent, error) {
	prev, err := c.LoadStats()
	if err != nil {
		return game.NotificationEvent{}, err
	}

	// Mutate a copy; diffing needs the previous snapshot intact.
	next, err := mutate(prev.Clone())
	if err != nil {
		return game.NotificationEvent{}, err
	}
	next = game.Refresh(next, c.Clock.Now())

	if err := c.Store.Save(next); err != nil {
		logger.Warn("Failed to save game state", "error", err)
	}
	return game.DiffSnapshots(prev, next), nil
}

// PrintEvent renders a notification event as transient output lines.
func PrintEvent(event game.NotificationEvent) {
	if event.XPGained > 0 {
		fmt.Printf("+%d XP\n", event.XPGained)
	} else if event.XPGained < 0 {
		fmt.Printf("%d XP\n", event.XPGained)
	}
	for _, tier := range event.StreakMilestones {
		fmt.Printf("%s %s! %d-day streak\n", tier.Emoji, tier.Title, tier.Days)
	}
	for _, m := range event.NewMilestones {
		fmt.Printf("%s Achievement unlocked: %s (%s)\n", m.Emoji, m.Name, m.Reward)
	}
	if event.LeveledUp {
		fmt.Println("🎉 LEVEL UP!")
	}
}
