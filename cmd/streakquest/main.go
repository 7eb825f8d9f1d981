package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/streakquest/internal/cli"
	"github.com/julianstephens/streakquest/internal/clock"
	"github.com/julianstephens/streakquest/internal/constants"
	"github.com/julianstephens/streakquest/internal/errors"
	"github.com/julianstephens/streakquest/internal/logger"
	"github.com/julianstephens/streakquest/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Game state file path. A .db extension selects the SQLite backend, anything else the JSON backend." type:"string" default:"~/.config/streakquest/streakquest.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init       cli.InitCmd       `cmd:"" help:"Initialize streakquest storage."`
	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today      cli.TodayCmd      `cmd:"" help:"Show today's habit checklist."`
	Stats      cli.StatsCmd      `cmd:"" help:"Show XP, level and streak stats."`
	Milestones cli.MilestonesCmd `cmd:"" help:"Show unlocked achievements and milestone tiers."`
	Habit      cli.HabitCmd      `cmd:"" help:"Manage habits and completions."`
	Backup     struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage game state backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gamified habit tracker: streaks, XP, levels, achievements"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := storage.ExpandPath(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	clk := clock.System{}
	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath, clk)
	} else {
		store = storage.NewJSONStore(configPath, clk)
	}

	appCtx := &cli.Context{
		Store: store,
		Clock: clk,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}
