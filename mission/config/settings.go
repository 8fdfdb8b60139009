package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Output formats accepted by Settings.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the environment-level configuration of the rovers CLI.
// Command-line flags take precedence over these values.
type Settings struct {
	Input       string `env:"ROVER_INPUT"        envDefault:"-"`
	MissionsDir string `env:"ROVER_MISSIONS_DIR" envDefault:"missions"`
	Format      string `env:"ROVER_FORMAT"       envDefault:"text"`
	Debug       bool   `env:"ROVER_DEBUG"        envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment and validates them.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the output format.
func (s *Settings) Validate() error {
	switch s.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q (expected text or json)", ErrInvalidSettings, s.Format)
	}
}

// LoadDotEnv loads the given .env files (".env" when none are given).
// It reports whether anything was loaded; a missing file is not an error.
func LoadDotEnv(files ...string) (bool, error) {
	if err := godotenv.Load(files...); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load .env file: %w", err)
	}
	return true, nil
}
