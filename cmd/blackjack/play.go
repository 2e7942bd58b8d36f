package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Config   string `short:"c" default:"blackjack.hcl" help:"Path to HCL config file"`
	Bankroll int    `help:"Starting bankroll (overrides config)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	NoColor  bool   `help:"Disable colored output"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.Bankroll > 0 {
		cfg.Table.Bankroll = c.Bankroll
		if cfg.Table.MaxBet > c.Bankroll {
			cfg.Table.MaxBet = c.Bankroll
		}
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Gameplay lines render in the TUI; debug logging goes to a file so
	// it never fights the alternate screen.
	debugFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "PLAY",
	})
	if cfg.Log.Level == "debug" {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Info("starting session",
		"bankroll", cfg.Table.Bankroll, "min_bet", cfg.Table.MinBet, "max_bet", cfg.Table.MaxBet)

	table := game.NewTable(randutil.Auto(c.Seed), game.WithBankroll(cfg.Table.Bankroll))
	model := tui.NewModel(table, cfg.Table, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	fmt.Printf("Final bankroll: %d\n", table.Bankroll())
	return nil
}
