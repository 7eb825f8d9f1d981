package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/game"
	"github.com/julianstephens/streakquest/internal/logger"
	"github.com/julianstephens/streakquest/internal/models"
	"github.com/julianstephens/streakquest/internal/tui/components/habitlist"
	"github.com/julianstephens/streakquest/internal/validation"
)

const notificationDuration = 4 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 6
		m.habitList.SetSize(msg.Width-4, h)
		m.milestoneList.SetSize(msg.Width-4, h)
		return m, nil

	case clearNotificationMsg:
		m.notification = ""
		return m, nil
	}

	switch m.state {
	case constants.StateAddHabit, constants.StateRenameHabit:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.state = nextTab(m.state, 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.state = nextTab(m.state, -1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		return m.applyToggle(msg.ID, msg.Completed)

	case habitlist.RenameHabitMsg:
		habit, ok := m.stats.FindHabit(msg.ID)
		if !ok {
			return m, nil
		}
		m.renameTargetID = msg.ID
		m.habitForm = &HabitFormModel{Name: habit.Name, Emoji: habit.Emoji}
		m.form = NewHabitForm(m.habitForm)
		m.state = constants.StateRenameHabit
		return m, m.form.Init()

	case habitlist.DeleteHabitMsg:
		m.deleteTargetID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case constants.StateMilestones:
		m.milestoneList, cmd = m.milestoneList.Update(msg)
	}
	return m, cmd
}

// nextTab cycles through the main tabs in either direction.
func nextTab(state constants.SessionState, delta int) constants.SessionState {
	tabs := []constants.SessionState{
		constants.StateHabits,
		constants.StateStats,
		constants.StateMilestones,
	}
	for i, s := range tabs {
		if s == state {
			return tabs[(i+delta+len(tabs))%len(tabs)]
		}
	}
	return constants.StateHabits
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		name, err := validation.HabitName(m.habitForm.Name)
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		emoji := validation.Emoji(m.habitForm.Emoji)

		var applyCmd tea.Cmd
		if m.state == constants.StateRenameHabit {
			m, applyCmd = m.applyMutation(func(stats models.GameStats) models.GameStats {
				for i, h := range stats.Habits {
					if h.ID == m.renameTargetID {
						stats.Habits[i] = game.RenameHabit(h, name, emoji)
					}
				}
				return stats
			})
		} else {
			if _, exists := m.stats.FindHabitByName(name); exists {
				m.formError = fmt.Sprintf("habit with name %q already exists", name)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m, applyCmd = m.applyMutation(func(stats models.GameStats) models.GameStats {
				stats.Habits = append(stats.Habits, game.NewHabit(name, emoji, m.clock.Now()))
				return stats
			})
		}
		cmds = append(cmds, applyCmd)

		m.formError = ""
		m.state = constants.StateHabits

	case huh.StateAborted:
		m.state = constants.StateHabits
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		id := m.deleteTargetID
		m.deleteTargetID = ""
		m.state = constants.StateHabits
		var cmd tea.Cmd
		m, cmd = m.applyMutation(func(stats models.GameStats) models.GameStats {
			for i, h := range stats.Habits {
				if h.ID == id {
					stats.Habits = append(stats.Habits[:i], stats.Habits[i+1:]...)
					break
				}
			}
			return stats
		})
		return m, cmd
	case "n", "N", "esc":
		m.deleteTargetID = ""
		m.state = constants.StateHabits
	}
	return m, nil
}

func (m Model) applyToggle(id string, completed bool) (tea.Model, tea.Cmd) {
	today := m.clock.Today()
	model, cmd := m.applyMutation(func(stats models.GameStats) models.GameStats {
		for i, h := range stats.Habits {
			if h.ID == id {
				stats.Habits[i] = game.ToggleCompletion(h, today, completed, today)
			}
		}
		return stats
	})
	return model, cmd
}

// applyMutation runs a mutation, recomputes progress, diffs the snapshots
// for the notification banner, persists, and refreshes the components.
// Save failures are logged and swallowed; the in-memory snapshot stays
// authoritative for the session.
func (m Model) applyMutation(mutate func(models.GameStats) models.GameStats) (Model, tea.Cmd) {
	prev := m.stats
	next := game.Refresh(mutate(prev.Clone()), m.clock.Now())

	event := game.DiffSnapshots(prev, next)
	m.notification = formatEvent(event)

	if err := m.store.Save(next); err != nil {
		logger.Warn("Failed to save game state", "error", err)
	}

	m.stats = next
	m.habitList.SetHabits(next.Habits, m.clock.Today())
	m.milestoneList.SetStats(next)

	if m.notification == "" {
		return m, nil
	}
	return m, tea.Tick(notificationDuration, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

// formatEvent renders a notification event as a one-line banner.
func formatEvent(event game.NotificationEvent) string {
	if event.Empty() {
		return ""
	}

	var parts []string
	if event.XPGained != 0 {
		parts = append(parts, fmt.Sprintf("%+d XP", event.XPGained))
	}
	for _, tier := range event.StreakMilestones {
		parts = append(parts, fmt.Sprintf("%s %s (%d days)", tier.Emoji, tier.Title, tier.Days))
	}
	for _, milestone := range event.NewMilestones {
		parts = append(parts, fmt.Sprintf("%s %s unlocked", milestone.Emoji, milestone.Name))
	}
	if event.LeveledUp {
		parts = append(parts, "🎉 LEVEL UP!")
	}
	return strings.Join(parts, "  ·  ")
}
