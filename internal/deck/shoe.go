package deck

import (
	rand "math/rand/v2"
)

// Shoe is the card source for a round: a single 52-card deck, randomly
// permuted. Drawing from an exhausted shoe transparently refills and
// reshuffles a complete deck before satisfying the draw, so Draw never
// fails. Rounds call Reset at their boundary so no card information
// carries across rounds.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a freshly shuffled single-deck shoe using the provided
// RNG. The RNG is required so that card order is reproducible under a
// fixed seed.
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	s.Reset()
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order before
// falling back to refill-and-shuffle behaviour. Used by tests to script
// exact deals.
func NewStackedShoe(rng *rand.Rand, cards ...Card) *Shoe {
	s := &Shoe{
		cards: append(make([]Card, 0, max(len(cards), 52)), cards...),
		rng:   rng,
	}
	return s
}

// Reset refills the shoe with all 52 distinct cards and shuffles.
func (s *Shoe) Reset() {
	s.cards = s.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			s.cards = append(s.cards, NewCard(suit, rank))
		}
	}
	s.shuffle()
}

// Draw removes and returns the next card, refilling the shoe first if it
// has been exhausted.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Reset()
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}
