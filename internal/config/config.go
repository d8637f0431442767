// Package config loads the gesture configuration from the config file, the
// environment, command-line flags and the interactive routine form
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Provider ProviderConfig `mapstructure:"provider"`
		Settings SettingsConfig `mapstructure:"settings"`
		Log      LogConfig      `mapstructure:"log"`
		Server   ServerConfig   `mapstructure:"server"`
		CLI      CLIConfig      `mapstructure:"-"`
		Routine  RoutineConfig  `mapstructure:"routine"`
		Display  DisplayConfig  `mapstructure:"display"`
	}

	// ProviderConfig selects and configures the image provider.
	ProviderConfig struct {
		Source          string        `mapstructure:"source"`
		BaseURL         string        `mapstructure:"base_url"`
		AccessKey       string        `mapstructure:"access_key"`
		ProxyURL        string        `mapstructure:"proxy_url"`
		Timeout         time.Duration `mapstructure:"timeout"`
		RequestsPerHour int           `mapstructure:"requests_per_hour"`
	}

	// ServerConfig configures the image proxy server.
	ServerConfig struct {
		Addr      string  `mapstructure:"addr"`
		RateLimit float64 `mapstructure:"rate_limit"`
		Burst     int     `mapstructure:"burst"`
	}

	// SettingsConfig holds behaviour toggles for the slideshow.
	SettingsConfig struct {
		Cmd    string `mapstructure:"cmd"`
		Notify bool   `mapstructure:"notify"`
		Beep   bool   `mapstructure:"beep"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds options that only exist for the current invocation.
	CLIConfig struct {
		SkipPrompt bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	SourceUnsplash = "unsplash"
	SourceProxy    = "proxy"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies the options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
