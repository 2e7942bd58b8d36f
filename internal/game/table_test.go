package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestPlaceBetValidation(t *testing.T) {
	table := NewTable(randutil.New(1), WithBankroll(100))

	require.ErrorIs(t, table.PlaceBet(0), ErrBetNonPositive)
	require.ErrorIs(t, table.PlaceBet(-5), ErrBetNonPositive)
	require.ErrorIs(t, table.PlaceBet(101), ErrBetExceedsBankroll)
	require.NoError(t, table.PlaceBet(100))

	// A rejected bet never moves money.
	assert.Equal(t, 100, table.Bankroll())
}

func TestDealRequiresBet(t *testing.T) {
	table := NewTable(randutil.New(1))
	_, err := table.Deal()
	require.ErrorIs(t, err, ErrNoBet)
}

func TestNoRoundOperations(t *testing.T) {
	table := NewTable(randutil.New(1))

	require.ErrorIs(t, table.Apply(0, Hit), ErrNoRound)
	_, err := table.Settle()
	require.ErrorIs(t, err, ErrNoRound)
	assert.Nil(t, table.ValidActions(0))
}

func TestBetRejectedMidRound(t *testing.T) {
	table := stackedTable(100, "ThTs9h7s")
	_ = dealRound(t, table, 10)

	require.ErrorIs(t, table.PlaceBet(10), ErrRoundInProgress)
	_, err := table.Deal()
	require.ErrorIs(t, err, ErrRoundInProgress)
}

func TestDealerPolicySeam(t *testing.T) {
	// The same deal plays out differently under the two policies: the
	// dealer shows ace-six, a soft 17.
	stack := "ThAh9h6s3c"

	// House rule: stand on any 17. Player's 19 wins.
	rng := randutil.New(1)
	table := NewTable(rng,
		WithBankroll(100),
		WithShoe(deck.NewStackedShoe(rng, deck.MustParseCards(stack)...)),
	)
	_ = dealRound(t, table, 10)
	require.NoError(t, table.Apply(0, Stand))
	require.Len(t, table.Round().Dealer.Cards, 2)

	outcomes, err := table.Settle()
	require.NoError(t, err)
	assert.Equal(t, Win, outcomes[0].Result)

	// Substituted rule: hit soft 17. The 3 makes 20 and the player loses.
	rng = randutil.New(1)
	table = NewTable(rng,
		WithBankroll(100),
		WithShoe(deck.NewStackedShoe(rng, deck.MustParseCards(stack)...)),
		WithPolicy(HitSoft17),
	)
	_ = dealRound(t, table, 10)
	require.NoError(t, table.Apply(0, Stand))
	require.Len(t, table.Round().Dealer.Cards, 3)

	outcomes, err = table.Settle()
	require.NoError(t, err)
	assert.Equal(t, Loss, outcomes[0].Result)
}

func TestMultiRoundSession(t *testing.T) {
	table := NewTable(randutil.New(99), WithBankroll(200))

	for i := 0; i < 5; i++ {
		require.NoError(t, table.PlaceBet(10))
		round, err := table.Deal()
		require.NoError(t, err)

		// Fresh deck each round: four cards gone after the deal unless
		// the natural check already ended the round.
		for round.State() == StatePlayerTurn {
			require.NoError(t, table.Apply(round.ActiveHand(), Stand))
		}

		outcomes, err := table.Settle()
		require.NoError(t, err)
		require.NotEmpty(t, outcomes)
	}

	// Net movement stays within the theoretical envelope for 5 flat bets.
	assert.GreaterOrEqual(t, table.Bankroll(), 200-5*10)
	assert.LessOrEqual(t, table.Bankroll(), 200+5*15)
}
