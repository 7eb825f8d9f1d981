package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streakquest/internal/validation"
)

// HabitFormModel backs the add/edit habit form.
type HabitFormModel struct {
	Name  string
	Emoji string
}

func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					_, err := validation.HabitName(s)
					return err
				}),
			huh.NewInput().
				Title("Emoji").
				Description("Leave blank for the default glyph").
				Value(&fm.Emoji),
		),
	).WithTheme(huh.ThemeDracula())
}
