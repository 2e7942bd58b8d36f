package simulator

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsDeterministicForSeed(t *testing.T) {
	cfg := Config{
		Sessions: 4,
		Rounds:   200,
		Bankroll: 1000,
		Bet:      10,
		Seed:     42,
		Clock:    quartz.NewMock(t),
	}

	first, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	second, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunResultsAreConsistent(t *testing.T) {
	cfg := Config{
		Sessions: 2,
		Rounds:   100,
		Bankroll: 1000,
		Bet:      10,
		Seed:     7,
		Clock:    quartz.NewMock(t),
	}

	results, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Positive(t, results.Rounds)
	assert.LessOrEqual(t, results.Rounds, cfg.Sessions*cfg.Rounds)
	// Splits settle two hands per round, so outcomes can exceed rounds
	// but never fall short.
	assert.GreaterOrEqual(t, results.Wins+results.Losses+results.Pushes, results.Rounds)
	assert.Equal(t, results.Wins+results.Losses+results.Pushes,
		results.Rounds+results.Splits)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{
		Sessions: 1,
		Rounds:   10,
		Bankroll: 100,
		Bet:      10,
		Seed:     1,
		Clock:    quartz.NewMock(t),
	}).Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
