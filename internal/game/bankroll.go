package game

// Bankroll is the single-balance ledger for a table. It is mutated only by
// the round engine: the split second wager and double top-up debit it
// immediately, settlement applies each hand's net result. The original
// wager is tracked on the hand, not pre-debited.
type Bankroll struct {
	balance int
}

// NewBankroll creates a ledger with the given starting balance.
func NewBankroll(balance int) *Bankroll {
	return &Bankroll{balance: balance}
}

// Balance returns the current balance.
func (b *Bankroll) Balance() int {
	return b.balance
}

// Credit adds n to the balance.
func (b *Bankroll) Credit(n int) {
	b.balance += n
}

// Debit removes n from the balance.
func (b *Bankroll) Debit(n int) {
	b.balance -= n
}
