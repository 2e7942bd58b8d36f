// Package game implements the core rules engine for single-table blackjack:
// hand valuation under the ace-flex rule, the round state machine, the
// dealer's fixed drawing policy, and wager settlement.
//
// The main type is Table, which owns the bankroll and shoe across rounds
// and exposes the engine contract consumed by interaction shells:
//
//	table := game.NewTable(rng, game.WithBankroll(500))
//	if err := table.PlaceBet(25); err != nil { ... }
//	round, _ := table.Deal()
//	for _, a := range table.ValidActions(0) { ... }
//	table.Apply(0, game.Hit)
//	outcomes, _ := table.Settle()
//
// The engine never prompts or loops on input; invalid bets and illegal
// actions return recoverable errors and leave the state untouched. All
// rendering, prompting, and the play-again loop belong to the caller.
//
// # Deterministic Testing
//
// Randomness is explicit: NewTable requires a *rand.Rand, and WithShoe
// accepts a stacked shoe so tests can script exact deals:
//
//	shoe := deck.NewStackedShoe(rng, deck.MustParseCards("8c8dTh6s...")...)
//	table := game.NewTable(rng, game.WithShoe(shoe))
//
// # Architecture
//
// Table delegates to specialized components:
//   - Evaluate: the single pure (total, soft) valuation function
//   - Round: the per-round state machine over one dealer hand and
//     one-or-two player hands
//   - DealerPolicy: the named dealer drawing rule (StandSoft17 default)
//   - Bankroll: the single-balance ledger mutated only at split, double,
//     and settlement time
package game
