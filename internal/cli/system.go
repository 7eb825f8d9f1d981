package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/streakquest/internal/tui"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing game state before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		blobPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(blobPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(blobPath); err != nil {
				return fmt.Errorf("failed to delete existing game state: %w", err)
			}
			fmt.Printf("Deleted existing game state at: %s\n", blobPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing game state: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized streakquest storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	stats, err := ctx.LoadStats()
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx.Store, ctx.Clock, stats)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
