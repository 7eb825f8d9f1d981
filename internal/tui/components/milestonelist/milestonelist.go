package milestonelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/streakquest/internal/models"
)

type Item struct {
	Milestone models.Milestone
	HabitName string
	Unlocked  bool
}

func (i Item) Title() string {
	if i.Unlocked {
		return fmt.Sprintf("%s %s (%s)", i.Milestone.Emoji, i.Milestone.Name, i.HabitName)
	}
	return fmt.Sprintf("🔒 %s", i.Milestone.Name)
}

func (i Item) Description() string {
	if i.Unlocked {
		return fmt.Sprintf("%s · unlocked %s", i.Milestone.Reward, i.Milestone.UnlockedAt)
	}
	return fmt.Sprintf("%s · requires a %d-day streak", i.Milestone.Reward, i.Milestone.RequiredDays)
}

func (i Item) FilterValue() string { return i.Milestone.Name }

type Model struct {
	list list.Model
}

func New(stats models.GameStats, width, height int) Model {
	l := list.New(itemsFor(stats), list.NewDefaultDelegate(), width, height)
	l.Title = "Milestones"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	return Model{list: l}
}

// itemsFor lists unlocked instances first, then the still-locked catalog
// tiers (a tier is locked while no habit has unlocked it).
func itemsFor(stats models.GameStats) []list.Item {
	var items []list.Item

	unlockedDefs := make(map[string]bool)
	for _, m := range stats.UserProgress.UnlockedMilestones {
		items = append(items, Item{
			Milestone: m,
			HabitName: habitNameFor(stats, m),
			Unlocked:  true,
		})
		// Instance ids are "<definitionID>-<habitID>".
		for _, def := range models.Milestones {
			if strings.HasPrefix(m.ID, def.ID+"-") {
				unlockedDefs[def.ID] = true
			}
		}
	}

	for _, def := range models.Milestones {
		if !unlockedDefs[def.ID] {
			items = append(items, Item{Milestone: def})
		}
	}

	return items
}

func habitNameFor(stats models.GameStats, m models.Milestone) string {
	for _, h := range stats.Habits {
		if strings.HasSuffix(m.ID, "-"+h.ID) {
			return h.Name
		}
	}
	return "unknown habit"
}

func (m *Model) SetStats(stats models.GameStats) {
	m.list.SetItems(itemsFor(stats))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
