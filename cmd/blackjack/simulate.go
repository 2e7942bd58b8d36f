package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/fileutil"
	"github.com/lox/blackjack-cli/internal/simulator"
)

// SimulateCmd plays rounds headlessly and reports aggregate results
type SimulateCmd struct {
	Rounds   int    `default:"10000" help:"Rounds per session"`
	Sessions int    `default:"4" help:"Independent sessions run in parallel"`
	Bankroll int    `default:"1000" help:"Starting bankroll per session"`
	Bet      int    `default:"10" help:"Flat bet per round"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Output   string `short:"o" help:"Write results as JSON to this file"`
	Verbose  bool   `short:"V" help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := c.Seed
	if seed == 0 {
		seed = int64(os.Getpid())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := simulator.New(simulator.Config{
		Sessions: c.Sessions,
		Rounds:   c.Rounds,
		Bankroll: c.Bankroll,
		Bet:      c.Bet,
		Seed:     seed,
		Logger:   logger,
	})

	logger.Info("starting simulation",
		"sessions", c.Sessions, "rounds", c.Rounds, "bet", c.Bet, "seed", seed)

	results, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("simulation complete",
		"rounds", results.Rounds,
		"wins", results.Wins,
		"losses", results.Losses,
		"pushes", results.Pushes,
		"naturals", results.Naturals,
		"splits", results.Splits,
		"doubles", results.Doubles,
		"busted_sessions", results.Busted,
		"net", results.Net,
		"elapsed", results.Elapsed,
	)

	if c.Output != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		logger.Info("wrote results", "path", c.Output)
	}
	return nil
}
