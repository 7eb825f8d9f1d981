package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/streakquest/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID        string
	Completed bool
}

type RenameHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type Item struct {
	Habit models.Habit
	Done  bool
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s %s", mark, i.Habit.Emoji, i.Habit.Name)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("streak %d · best %d · %d completions",
		i.Habit.CurrentStreak, i.Habit.LongestStreak, i.Habit.TotalCompletions)
	if i.Done {
		return desc + " · done today"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Rename key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle today"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today string
}

func New(habits []models.Habit, today string, width, height int) Model {
	l := list.New(itemsFor(habits, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Rename, keys.Delete}
	}

	return Model{
		list:  l,
		keys:  keys,
		today: today,
	}
}

func itemsFor(habits []models.Habit, today string) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h, Done: h.CompletedOn(today)}
	}
	return items
}

// SetHabits refreshes the list contents, keeping the cursor position.
func (m *Model) SetHabits(habits []models.Habit, today string) {
	index := m.list.Index()
	m.today = today
	m.list.SetItems(itemsFor(habits, today))
	if index >= len(habits) {
		index = len(habits) - 1
	}
	if index >= 0 {
		m.list.Select(index)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the habit under the cursor, if any.
func (m Model) Selected() (Item, bool) {
	item, ok := m.list.SelectedItem().(Item)
	return item, ok
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return ToggleHabitMsg{ID: item.Habit.ID, Completed: !item.Done}
				}
			}
		case key.Matches(msg, m.keys.Rename):
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg { return RenameHabitMsg{ID: item.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: item.Habit.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
