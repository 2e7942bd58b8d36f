package game

import "errors"

// Engine errors. All are recoverable: the shell re-prompts or falls back,
// and the state that produced the error is left untouched.
var (
	// ErrBetNonPositive rejects a wager of zero or less.
	ErrBetNonPositive = errors.New("bet must be positive")

	// ErrBetExceedsBankroll rejects a wager above the current balance.
	ErrBetExceedsBankroll = errors.New("bet exceeds bankroll")

	// ErrIllegalAction rejects an action outside the current legal set.
	ErrIllegalAction = errors.New("action not legal in current state")

	// ErrSplitBankroll declines a split the pair qualifies for but the
	// bankroll cannot fund. Play continues with the single original hand.
	ErrSplitBankroll = errors.New("insufficient bankroll to split")

	// ErrNoRound means no round is in play for the requested operation.
	ErrNoRound = errors.New("no round in progress")

	// ErrRoundInProgress rejects a new bet before settlement.
	ErrRoundInProgress = errors.New("round already in progress")

	// ErrRoundNotComplete rejects settlement while hands are still live.
	ErrRoundNotComplete = errors.New("round not complete")

	// ErrNoBet means Deal was called before a bet was placed.
	ErrNoBet = errors.New("no bet placed")
)
