package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete table configuration
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Log   LogSettings   `hcl:"log,block"`
}

// TableSettings contains the money knobs for a session. Bet limits bound
// what the shell will accept; the rules of play themselves are fixed.
type TableSettings struct {
	Bankroll int `hcl:"bankroll,optional"`
	MinBet   int `hcl:"min_bet,optional"`
	MaxBet   int `hcl:"max_bet,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Bankroll: 500,
			MinBet:   1,
			MaxBet:   500,
		},
		Log: LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
	}
}

// Load reads configuration from an HCL file, returning defaults when the
// file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Table.Bankroll == 0 {
		cfg.Table.Bankroll = def.Table.Bankroll
	}
	if cfg.Table.MinBet == 0 {
		cfg.Table.MinBet = def.Table.MinBet
	}
	if cfg.Table.MaxBet == 0 {
		cfg.Table.MaxBet = cfg.Table.Bankroll
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
}

func validate(cfg *Config) error {
	if cfg.Table.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive, got %d", cfg.Table.Bankroll)
	}
	if cfg.Table.MinBet <= 0 {
		return fmt.Errorf("min_bet must be positive, got %d", cfg.Table.MinBet)
	}
	if cfg.Table.MaxBet < cfg.Table.MinBet {
		return fmt.Errorf("max_bet %d below min_bet %d", cfg.Table.MaxBet, cfg.Table.MinBet)
	}
	return nil
}
