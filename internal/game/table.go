package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack-cli/internal/deck"
)

// DefaultBankroll is the starting balance when none is configured.
const DefaultBankroll = 500

// Table owns the bankroll and shoe across rounds and runs one round at a
// time. It is the engine surface consumed by interaction shells.
type Table struct {
	shoe      *deck.Shoe
	bankroll  *Bankroll
	policy    DealerPolicy
	round     *Round
	bet       int
	reshuffle bool // fresh deck each round; off when a scripted shoe is supplied
}

// TableOption configures a Table during creation.
type TableOption func(*Table)

// NewTable creates a table with the required RNG and optional
// configuration. The RNG is required to make randomness explicit and
// testing deterministic.
//
//	// Production - seeded or time-based RNG
//	table := game.NewTable(randutil.Auto(seed), game.WithBankroll(500))
//
//	// Testing - scripted deals
//	shoe := deck.NewStackedShoe(rng, cards...)
//	table := game.NewTable(rng, game.WithShoe(shoe))
func NewTable(rng *rand.Rand, opts ...TableOption) *Table {
	if rng == nil {
		panic("rng is required for table creation")
	}

	t := &Table{
		bankroll:  NewBankroll(DefaultBankroll),
		policy:    StandSoft17,
		reshuffle: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.shoe == nil {
		t.shoe = deck.NewShoe(rng)
	}
	return t
}

// WithBankroll sets the starting balance.
func WithBankroll(balance int) TableOption {
	return func(t *Table) {
		t.bankroll = NewBankroll(balance)
	}
}

// WithShoe supplies a specific shoe and disables the fresh-deck-per-round
// reshuffle so scripted card orders survive the deal.
func WithShoe(shoe *deck.Shoe) TableOption {
	return func(t *Table) {
		t.shoe = shoe
		t.reshuffle = false
	}
}

// WithPolicy substitutes the dealer drawing rule.
func WithPolicy(policy DealerPolicy) TableOption {
	return func(t *Table) {
		t.policy = policy
	}
}

// Bankroll returns the current balance.
func (t *Table) Bankroll() int {
	return t.bankroll.Balance()
}

// Round returns the round in play, or nil between rounds.
func (t *Table) Round() *Round {
	return t.round
}

// PlaceBet accepts a wager for the next round. The balance is not debited
// here; the wager is tracked on the hand and settles net at the end of
// the round.
func (t *Table) PlaceBet(amount int) error {
	if t.round != nil && t.round.State() != StateSettled {
		return ErrRoundInProgress
	}
	if amount <= 0 {
		return ErrBetNonPositive
	}
	if amount > t.bankroll.Balance() {
		return ErrBetExceedsBankroll
	}
	t.bet = amount
	return nil
}

// Deal starts the round for the placed bet: reshuffles the shoe, deals in
// fixed order, and runs the natural check.
func (t *Table) Deal() (*Round, error) {
	if t.round != nil && t.round.State() != StateSettled {
		return nil, ErrRoundInProgress
	}
	if t.bet == 0 {
		return nil, ErrNoBet
	}

	if t.reshuffle {
		t.shoe.Reset()
	}
	t.round = newRound(t.shoe, t.bankroll, t.policy, t.bet)
	t.bet = 0
	return t.round, nil
}

// ValidActions returns the legal actions for the given hand of the
// current round.
func (t *Table) ValidActions(hand int) []Action {
	if t.round == nil {
		return nil
	}
	return t.round.ValidActions(hand)
}

// Apply processes one action against the current round.
func (t *Table) Apply(hand int, action Action) error {
	if t.round == nil {
		return ErrNoRound
	}
	return t.round.Apply(hand, action)
}

// Settle resolves the current round against the bankroll and returns the
// per-hand outcomes.
func (t *Table) Settle() ([]Outcome, error) {
	if t.round == nil {
		return nil, ErrNoRound
	}
	return t.round.Settle()
}
