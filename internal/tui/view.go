package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/game"
	"github.com/julianstephens/streakquest/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHabits:
		content = docStyle.Render(m.habitList.View())
	case constants.StateStats:
		content = docStyle.Render(m.viewStats())
	case constants.StateMilestones:
		content = docStyle.Render(m.milestoneList.View())
	case constants.StateAddHabit, constants.StateRenameHabit:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var banner string
	if m.notification != "" {
		banner = notificationStyle.Render(m.notification)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	titles := []string{"Habits", "Stats", "Milestones"}
	states := []constants.SessionState{
		constants.StateHabits,
		constants.StateStats,
		constants.StateMilestones,
	}

	var tabs []string
	for i, title := range titles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	progress := m.stats.UserProgress
	today := m.clock.Today()

	var b strings.Builder
	fmt.Fprintf(&b, "Level %d\n", progress.Level)
	fmt.Fprintf(&b, "%s  %s\n\n",
		xpBarStyle.Render(XPBar(progress, 20)),
		statLabelStyle.Render(fmt.Sprintf("%d XP to next level", progress.XPToNextLevel)))
	fmt.Fprintf(&b, "Total XP: %d\n", progress.TotalXP)
	fmt.Fprintf(&b, "Achievements unlocked: %d\n\n", len(progress.UnlockedMilestones))

	if len(m.stats.Habits) == 0 {
		b.WriteString("No habits yet. Press 'a' on the Habits tab to add one.\n")
		return b.String()
	}

	bestStreak := 0
	for _, h := range m.stats.Habits {
		if h.CurrentStreak > bestStreak {
			bestStreak = h.CurrentStreak
		}
	}
	fmt.Fprintf(&b, "Habits: %d · best current streak: %d days\n", len(m.stats.Habits), bestStreak)

	if next, ok := game.NextStreakMilestone(bestStreak); ok {
		fmt.Fprintf(&b, "Next streak milestone: %s %s at day %d (+%d XP)\n",
			next.Emoji, next.Title, next.Days, next.XPBonus)
	}

	for _, h := range m.stats.Habits {
		if game.StreakAtRisk(h, today) {
			b.WriteString(warningStyle.Render(
				fmt.Sprintf("⚠ %q streak of %d days is at risk", h.Name, h.CurrentStreak)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// XPBar renders progress toward the next level as a fixed-width bar.
func XPBar(progress models.UserProgress, width int) string {
	earned := width - progress.XPToNextLevel*width/constants.XPPerLevel
	if earned < 0 {
		earned = 0
	}
	if earned > width {
		earned = width
	}
	return strings.Repeat("█", earned) + strings.Repeat("░", width-earned)
}

func (m Model) viewForm() string {
	if m.formError != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			dangerStyle.Render("Error: "+m.formError),
			m.form.View(),
		)
	}
	return m.form.View()
}

func (m Model) viewConfirmDelete() string {
	name := m.deleteTargetID
	if habit, ok := m.stats.FindHabit(m.deleteTargetID); ok {
		name = habit.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q?", name)),
			warningStyle.Render("Its completions and unlocked achievements will be gone."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
