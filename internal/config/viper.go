package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GESTURE"

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyBodyParts       = "routine.body_parts"
	keyContentType     = "routine.content_type"
	keyImageCount      = "routine.image_count"
	keyTimePerImage    = "routine.time_per_image"
	keySource          = "provider.source"
	keyBaseURL         = "provider.base_url"
	keyAccessKey       = "provider.access_key"
	keyProxyURL        = "provider.proxy_url"
	keyTimeout         = "provider.timeout"
	keyRequestsPerHour = "provider.requests_per_hour"
	keyServerAddr      = "server.addr"
	keyServerRateLimit = "server.rate_limit"
	keyServerBurst     = "server.burst"
	keyNotify          = "settings.notify"
	keyBeep            = "settings.beep"
	keySessionCmd      = "settings.cmd"
	keyDarkTheme       = "display.dark_theme"
	keyLogLevel        = "log.level"
)

// EnvAccessKey is the conventional variable holding the Unsplash access key.
const EnvAccessKey = "UNSPLASH_ACCESS_KEY"

// WithViperConfig returns an Option that loads configuration from the config
// file at configPath, creating it with default values if it does not exist.
// Environment variables override file values but are never written back.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		if err := bindEnv(v); err != nil {
			return err
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyBodyParts, []string{string(FullBody)})
	v.SetDefault(keyContentType, string(SFW))
	v.SetDefault(keyImageCount, 12)
	v.SetDefault(keyTimePerImage, 60)
	v.SetDefault(keySource, SourceUnsplash)
	v.SetDefault(keyBaseURL, "https://api.unsplash.com")
	v.SetDefault(keyAccessKey, "")
	v.SetDefault(keyProxyURL, "http://localhost:3000")
	v.SetDefault(keyTimeout, "10s")
	v.SetDefault(keyRequestsPerHour, 50)
	v.SetDefault(keyServerAddr, ":3000")
	v.SetDefault(keyServerRateLimit, 1.0)
	v.SetDefault(keyServerBurst, 5)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyBeep, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
}

// bindEnv lets GESTURE_* variables and UNSPLASH_ACCESS_KEY override the file.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v.BindEnv(keyAccessKey, envPrefix+"_PROVIDER_ACCESS_KEY", EnvAccessKey)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.Routine.BodyParts = ParseBodyParts(v.GetStringSlice(keyBodyParts))

	return nil
}
