package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/samdwyer/careers/internal/telemetry"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// MaxPlayers bounds the player count accepted by the setup dialog.
	// Tokens are drawn as single digits, so at most 9.
	MaxPlayers int `env:"CAREERS_MAX_PLAYERS" envDefault:"6" validate:"min=1,max=9"`

	// SkipGoals creates players without asking for their goals.
	SkipGoals bool `env:"CAREERS_SKIP_GOALS"`

	// LogFile receives movement traces. The terminal is owned by the game screen.
	LogFile string `env:"CAREERS_LOG_FILE" envDefault:"careers.log" validate:"required"`

	// Locale controls digit grouping in dollar amounts.
	Locale string `env:"CAREERS_LOCALE" envDefault:"en-US" validate:"required"`

	Telemetry telemetry.Config
}

var validate = validator.New()

// LoadConfig parses and validates configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid config: locale %q: %w", c.Locale, err)
	}
	return nil
}

// LocaleTag returns the configured locale, falling back to American English.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
