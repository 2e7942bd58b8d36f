package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Evaluate computes the blackjack value of a card sequence. Aces count
// eleven until the total would bust, then demote to one, one at a time.
// The hand is soft iff an ace is present and the hard total (all aces as
// one) plus ten stays within 21 - i.e. one ace can still count eleven.
// Softness is derived from the hard total rather than the reduction loop
// so the two can never disagree.
func Evaluate(cards []deck.Card) (total int, soft bool) {
	sum, hard, hasAce := 0, 0, false
	for _, c := range cards {
		sum += c.BaseValue()
		if c.IsAce() {
			hasAce = true
			hard++
		} else {
			hard += c.BaseValue()
		}
	}
	reducible := sum - hard // 10 per ace still counted as eleven
	for sum > 21 && reducible > 0 {
		sum -= 10
		reducible -= 10
	}
	return sum, hasAce && hard+10 <= 21
}

// Hand is one wagered card sequence: the dealer's, the player's, or one of
// two player hands after a split. Cards are append-only during play.
type Hand struct {
	Cards []deck.Card
	Bet   int
	// Doubled marks a hand that took its one double-down card.
	Doubled bool
	// SplitAces marks a hand created by splitting aces: it receives one
	// card and stands, with no further decisions.
	SplitAces bool
	// Staked is the portion of Bet already debited from the bankroll
	// (the split second wager, the double top-up). Settlement returns it
	// alongside the outcome so net movement per round matches the wager.
	Staked int

	acted bool
}

func (h *Hand) add(c deck.Card) {
	h.Cards = append(h.Cards, c)
}

// Total returns the hand's blackjack value.
func (h *Hand) Total() int {
	total, _ := Evaluate(h.Cards)
	return total
}

// IsSoft reports whether an ace is currently counted as eleven.
func (h *Hand) IsSoft() bool {
	_, soft := Evaluate(h.Cards)
	return soft
}

// IsBlackjack reports a two-card 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Total() == 21
}

// IsBusted reports a total over 21.
func (h *Hand) IsBusted() bool {
	return h.Total() > 21
}

// CanDouble reports whether the hand is still in doubling shape: exactly
// two cards and not already doubled. Bankroll and turn-order checks live
// in the round engine.
func (h *Hand) CanDouble() bool {
	return len(h.Cards) == 2 && !h.Doubled
}

// CanSplit reports whether the hand is a splittable pair: exactly two
// cards of equal rank. Equal value is not enough - K♦ Q♠ is not a pair.
func (h *Hand) CanSplit() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// String renders the hand as cards plus value, e.g. "A♠ 6♥ (17)".
func (h *Hand) String() string {
	strs := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		strs[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(strs, " "), h.Total())
}
