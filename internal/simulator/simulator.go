// Package simulator runs headless blackjack sessions against the rules
// engine. Each session is an independent table with its own seeded RNG;
// sessions run in parallel but the engine inside each stays strictly
// sequential.
package simulator

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// Config holds configuration for a simulation run
type Config struct {
	Sessions int
	Rounds   int
	Bankroll int
	Bet      int
	Seed     int64
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Results aggregates outcomes across all sessions
type Results struct {
	Rounds   int
	Wins     int
	Losses   int
	Pushes   int
	Naturals int
	Splits   int
	Doubles  int
	Net      int
	Busted   int // sessions that ran out of bankroll
	Elapsed  time.Duration
}

// Simulator plays rounds with a fixed mimic-the-dealer strategy plus
// the two textbook deviations: double on eleven, split aces and eights.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes all sessions and merges their results. Session seeds are
// derived from the configured seed so a run replays exactly.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	start := s.config.Clock.Now()

	perSession := make([]Results, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			r, err := s.playSession(ctx, s.config.Seed+int64(i))
			if err != nil {
				return err
			}
			perSession[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Results{}
	for _, r := range perSession {
		total.Rounds += r.Rounds
		total.Wins += r.Wins
		total.Losses += r.Losses
		total.Pushes += r.Pushes
		total.Naturals += r.Naturals
		total.Splits += r.Splits
		total.Doubles += r.Doubles
		total.Net += r.Net
		total.Busted += r.Busted
	}
	total.Elapsed = s.config.Clock.Since(start)
	return total, nil
}

func (s *Simulator) playSession(ctx context.Context, seed int64) (Results, error) {
	var r Results
	table := game.NewTable(randutil.New(seed), game.WithBankroll(s.config.Bankroll))

	for i := 0; i < s.config.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if table.Bankroll() < s.config.Bet {
			r.Busted++
			break
		}

		if err := s.playRound(table, &r); err != nil {
			return r, err
		}
	}

	r.Net = table.Bankroll() - s.config.Bankroll
	if s.config.Logger != nil {
		s.config.Logger.Debug("session finished",
			"seed", seed, "rounds", r.Rounds, "net", r.Net)
	}
	return r, nil
}

func (s *Simulator) playRound(table *game.Table, r *Results) error {
	if err := table.PlaceBet(s.config.Bet); err != nil {
		return err
	}
	round, err := table.Deal()
	if err != nil {
		return err
	}

	for round.State() == game.StatePlayerTurn {
		hand := round.ActiveHand()
		action := decide(round.Hands[hand], table.ValidActions(hand))
		switch action {
		case game.Split:
			r.Splits++
		case game.Double:
			r.Doubles++
		}
		if err := table.Apply(hand, action); err != nil {
			return err
		}
	}

	outcomes, err := table.Settle()
	if err != nil {
		return err
	}

	r.Rounds++
	if round.Natural() {
		r.Naturals++
	}
	for _, o := range outcomes {
		switch o.Result {
		case game.Win:
			r.Wins++
		case game.Loss:
			r.Losses++
		case game.Push:
			r.Pushes++
		}
	}
	return nil
}

// decide picks from the legal actions: split aces and eights, double
// eleven, otherwise draw to 17 like the dealer.
func decide(h *game.Hand, actions []game.Action) game.Action {
	if slices.Contains(actions, game.Split) {
		if r := h.Cards[0].Rank; r == h.Cards[1].Rank && (h.Cards[0].IsAce() || h.Total() == 16) {
			return game.Split
		}
	}
	if slices.Contains(actions, game.Double) && h.Total() == 11 {
		return game.Double
	}
	if total, _ := game.Evaluate(h.Cards); total < 17 {
		return game.Hit
	}
	return game.Stand
}
