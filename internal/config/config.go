package config

import (
	"errors"
	"fmt"

	"blackjack/internal/game"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// maxSeats keeps the initial deal of every seat plus the dealer inside one deck.
const maxSeats = 52/2 - 1

type Config struct {
	BotToken             string  `env:"BOT_TOKEN"`
	DatabasePath         string  `env:"DATABASE_PATH" envDefault:"./blackjack.db"`
	LedgerEnabled        bool    `env:"LEDGER_ENABLED" envDefault:"false"`
	Language             string  `env:"TABLE_LANGUAGE" envDefault:"en"`
	MaxPlayers           int     `env:"MAX_PLAYERS" envDefault:"7"`
	BlackjackPays        float64 `env:"BLACKJACK_PAYS" envDefault:"1.5"`
	DealerStandThreshold int     `env:"DEALER_STAND_THRESHOLD" envDefault:"16"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	godotenv.Load()
	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MaxPlayers < 1 || c.MaxPlayers > maxSeats {
		return fmt.Errorf("MAX_PLAYERS must be between 1 and %d, got %d", maxSeats, c.MaxPlayers)
	}
	if c.BlackjackPays <= 0 {
		return fmt.Errorf("BLACKJACK_PAYS must be positive, got %v", c.BlackjackPays)
	}
	if c.DealerStandThreshold < 1 || c.DealerStandThreshold >= game.Blackjack {
		return fmt.Errorf("DEALER_STAND_THRESHOLD must be between 1 and %d, got %d", game.Blackjack-1, c.DealerStandThreshold)
	}
	if c.LedgerEnabled && c.DatabasePath == "" {
		return errors.New("DATABASE_PATH is empty while the ledger is enabled")
	}
	return nil
}

// RequireBotToken fails when the Telegram front end has nothing to log in with.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is not set")
	}
	return nil
}

func (c *Config) Rules() game.Rules {
	return game.Rules{
		StandThreshold: c.DealerStandThreshold,
		NaturalPayout:  c.BlackjackPays,
	}
}
