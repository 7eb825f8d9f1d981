package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/models"
	"github.com/julianstephens/streakquest/internal/storage"
	"github.com/julianstephens/streakquest/internal/tui/components/habitlist"
	"github.com/julianstephens/streakquest/internal/tui/components/milestonelist"
)

// clearNotificationMsg clears the transient event banner.
type clearNotificationMsg struct{}

type Model struct {
	store storage.Provider
	clock clock.Clock

	// stats is the authoritative in-memory snapshot; progress fields are
	// recomputed after every mutation.
	stats models.GameStats

	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	milestoneList milestonelist.Model

	form            *huh.Form
	habitForm       *HabitFormModel
	renameTargetID  string
	deleteTargetID  string
	notification    string
	formError       string
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, clk clock.Clock, stats models.GameStats) Model {
	today := clk.Today()
	return Model{
		store:         store,
		clock:         clk,
		stats:         stats,
		state:         constants.StateHabits,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitList:     habitlist.New(stats.Habits, today, 0, 0),
		milestoneList: milestonelist.New(stats, 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
