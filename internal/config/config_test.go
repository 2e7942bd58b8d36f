package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  bankroll = 1000
}
log {
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Table.Bankroll)
	assert.Equal(t, 1, cfg.Table.MinBet)
	// Max bet defaults to the full bankroll.
	assert.Equal(t, 1000, cfg.Table.MaxBet)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "blackjack.log", cfg.Log.File)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  bankroll = 250
  min_bet  = 5
  max_bet  = 50
}
log {
  level = "debug"
  file  = "session.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Table.Bankroll)
	assert.Equal(t, 5, cfg.Table.MinBet)
	assert.Equal(t, 50, cfg.Table.MaxBet)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "session.log", cfg.Log.File)
}

func TestLoadRejectsInvertedLimits(t *testing.T) {
	path := writeConfig(t, `
table {
  min_bet = 50
  max_bet = 10
}
log {
}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_bet")
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `table { bankroll = `)
	_, err := Load(path)
	require.Error(t, err)
}
