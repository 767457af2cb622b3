package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	Port         string `env:"BLACKJACK_PORT" envDefault:"8080"`
	FrontendURL  string `env:"BLACKJACK_FRONTEND_URL" envDefault:"http://localhost:5173"`
	DefaultDecks int    `env:"BLACKJACK_DEFAULT_DECKS" envDefault:"6"`
	MaxDecks     int    `env:"BLACKJACK_MAX_DECKS" envDefault:"8"`
}

// Load reads the environment, then lets command line flags in args override it.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "Server port")
	fs.StringVar(&cfg.FrontendURL, "frontend", cfg.FrontendURL, "Frontend URL for CORS")
	fs.IntVar(&cfg.DefaultDecks, "decks", cfg.DefaultDecks, "Decks per shoe when a request does not say")
	fs.IntVar(&cfg.MaxDecks, "max-decks", cfg.MaxDecks, "Largest shoe a request may ask for")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the deck bounds and port.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("port %q is not a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	if c.MaxDecks < 1 {
		return fmt.Errorf("max decks must be at least 1, got %d", c.MaxDecks)
	}
	if c.DefaultDecks < 1 || c.DefaultDecks > c.MaxDecks {
		return fmt.Errorf("default decks must be between 1 and %d, got %d", c.MaxDecks, c.DefaultDecks)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
