package game

import (
	"fmt"
	"slices"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Round is the state machine for one play-bet-resolve cycle: one dealer
// hand against one player hand, or two after a split. It owns the shoe
// and bankroll for the round's duration.
type Round struct {
	Dealer *Hand
	Hands  []*Hand

	shoe     *deck.Shoe
	bankroll *Bankroll
	policy   DealerPolicy

	state     State
	active    int
	splitUsed bool
	natural   bool
	outcomes  []Outcome
}

// newRound performs the initial deal and the natural check. Draw order is
// fixed: player, dealer, player, dealer.
func newRound(shoe *deck.Shoe, bankroll *Bankroll, policy DealerPolicy, bet int) *Round {
	r := &Round{
		Dealer:   &Hand{},
		Hands:    []*Hand{{Bet: bet}},
		shoe:     shoe,
		bankroll: bankroll,
		policy:   policy,
		state:    StatePlayerTurn,
	}

	r.Hands[0].add(shoe.Draw())
	r.Dealer.add(shoe.Draw())
	r.Hands[0].add(shoe.Draw())
	r.Dealer.add(shoe.Draw())

	// A natural on either side ends the round before any play: no split,
	// no hitting, no dealer draws.
	if r.Hands[0].IsBlackjack() || r.Dealer.IsBlackjack() {
		r.natural = true
		r.state = StateComplete
	}

	return r
}

// State returns the round's lifecycle state.
func (r *Round) State() State {
	return r.state
}

// Natural reports whether the round was decided at the natural check.
func (r *Round) Natural() bool {
	return r.natural
}

// ActiveHand returns the index of the hand awaiting an action, or -1 when
// player play is over.
func (r *Round) ActiveHand() int {
	if r.state != StatePlayerTurn {
		return -1
	}
	return r.active
}

// Upcard returns the dealer's face-up card.
func (r *Round) Upcard() deck.Card {
	return r.Dealer.Cards[0]
}

// ValidActions returns the legal actions for the given hand. Only the
// active hand has legal actions; every other index returns nil.
func (r *Round) ValidActions(hand int) []Action {
	if r.state != StatePlayerTurn || hand != r.active {
		return nil
	}

	h := r.Hands[hand]
	actions := []Action{Hit, Stand}
	if !h.acted && h.CanDouble() && r.bankroll.Balance() >= h.Bet {
		actions = append(actions, Double)
	}
	if r.splitEligible(hand) && r.bankroll.Balance() >= h.Bet {
		actions = append(actions, Split)
	}
	return actions
}

// splitEligible checks everything about a split except the bankroll: an
// unacted pair on the only hand, once per round.
func (r *Round) splitEligible(hand int) bool {
	return hand == 0 && len(r.Hands) == 1 && !r.splitUsed &&
		!r.Hands[hand].acted && r.Hands[hand].CanSplit()
}

// Apply processes one action against the given hand. Illegal actions and
// out-of-turn hands return an error without advancing state. A split the
// bankroll cannot fund returns ErrSplitBankroll; the caller continues
// with the single original hand.
func (r *Round) Apply(hand int, action Action) error {
	if r.state != StatePlayerTurn || hand != r.active {
		return fmt.Errorf("%w: hand %d is not awaiting an action", ErrIllegalAction, hand)
	}

	if action == Split && r.splitEligible(hand) && r.bankroll.Balance() < r.Hands[hand].Bet {
		return ErrSplitBankroll
	}
	if !slices.Contains(r.ValidActions(hand), action) {
		return fmt.Errorf("%w: %s", ErrIllegalAction, action)
	}

	h := r.Hands[hand]
	switch action {
	case Hit:
		h.acted = true
		h.add(r.shoe.Draw())
		if h.IsBusted() {
			r.advance()
		}

	case Stand:
		h.acted = true
		r.advance()

	case Double:
		// Top-up debited now; the doubled hand takes exactly one card
		// and stands, win or bust.
		r.bankroll.Debit(h.Bet)
		h.Staked += h.Bet
		h.Bet *= 2
		h.Doubled = true
		h.acted = true
		h.add(r.shoe.Draw())
		r.advance()

	case Split:
		r.split()
	}

	return nil
}

// split funds a second wager, breaks the pair into two one-card hands,
// and deals one card to each. Split aces are forced to stand on that
// single card.
func (r *Round) split() {
	orig := r.Hands[0]
	r.bankroll.Debit(orig.Bet)

	aces := orig.Cards[0].IsAce() && orig.Cards[1].IsAce()
	first := &Hand{Bet: orig.Bet, SplitAces: aces}
	second := &Hand{Bet: orig.Bet, SplitAces: aces, Staked: orig.Bet}
	first.add(orig.Cards[0])
	second.add(orig.Cards[1])
	first.add(r.shoe.Draw())
	second.add(r.shoe.Draw())

	r.Hands = []*Hand{first, second}
	r.splitUsed = true
	r.active = 0

	if aces {
		r.advance()
	}
}

// advance moves play to the next undecided hand, or on to the dealer.
// Split-ace hands auto-stand and are skipped.
func (r *Round) advance() {
	r.active++
	for r.active < len(r.Hands) && r.Hands[r.active].SplitAces {
		r.active++
	}
	if r.active < len(r.Hands) {
		return
	}

	r.playDealer()
	r.state = StateComplete
}

// playDealer reveals and runs the dealer's hand under the table policy.
// If every player hand busted the dealer stays as dealt.
func (r *Round) playDealer() {
	alive := false
	for _, h := range r.Hands {
		if !h.IsBusted() {
			alive = true
			break
		}
	}
	if !alive {
		return
	}

	for {
		total, soft := Evaluate(r.Dealer.Cards)
		if total > 21 || !r.policy(total, soft) {
			return
		}
		r.Dealer.add(r.shoe.Draw())
	}
}

// Settle computes each hand's outcome against the final dealer hand and
// applies the net movement to the bankroll. Settling twice returns the
// same outcomes without moving money again.
func (r *Round) Settle() ([]Outcome, error) {
	switch r.state {
	case StatePlayerTurn:
		return nil, ErrRoundNotComplete
	case StateSettled:
		return r.outcomes, nil
	}

	outcomes, delta := settle(r.Hands, r.Dealer, r.natural)
	r.bankroll.Credit(delta)
	r.outcomes = outcomes
	r.state = StateSettled
	return outcomes, nil
}

// settle is the pure settlement function: given the final hands it
// returns per-hand outcomes and the total bankroll delta. The delta for
// each hand is its net result plus the return of any stake already
// debited during play, so the net movement across the whole round is
// exactly the wager: push 0, win +bet (naturals pay 3:2), loss -bet.
func settle(hands []*Hand, dealer *Hand, natural bool) ([]Outcome, int) {
	outcomes := make([]Outcome, 0, len(hands))
	delta := 0

	for i, h := range hands {
		o := resolve(i, h, dealer, natural)
		switch o.Result {
		case Win:
			delta += o.Amount + h.Staked
		case Loss:
			delta += -o.Amount + h.Staked
		case Push:
			delta += h.Staked
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, delta
}

// resolve classifies a single hand against the dealer.
func resolve(i int, h *Hand, dealer *Hand, natural bool) Outcome {
	if natural {
		switch {
		case h.IsBlackjack() && dealer.IsBlackjack():
			return Outcome{Hand: i, Result: Push}
		case h.IsBlackjack():
			return Outcome{Hand: i, Result: Win, Amount: h.Bet * 3 / 2}
		default:
			return Outcome{Hand: i, Result: Loss, Amount: h.Bet}
		}
	}

	if h.IsBusted() {
		return Outcome{Hand: i, Result: Loss, Amount: h.Bet}
	}
	if dealer.IsBusted() {
		return Outcome{Hand: i, Result: Win, Amount: h.Bet}
	}

	pv, dv := h.Total(), dealer.Total()
	switch {
	case pv > dv:
		return Outcome{Hand: i, Result: Win, Amount: h.Bet}
	case pv < dv:
		return Outcome{Hand: i, Result: Loss, Amount: h.Bet}
	default:
		return Outcome{Hand: i, Result: Push}
	}
}
