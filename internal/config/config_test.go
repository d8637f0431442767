package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Routine: config.RoutineConfig{
			BodyParts:    []config.BodyPart{config.FullBody},
			ContentType:  config.SFW,
			ImageCount:   12,
			TimePerImage: 60,
		},
		Provider: config.ProviderConfig{
			Source:          config.SourceUnsplash,
			BaseURL:         "https://api.unsplash.com",
			ProxyURL:        "http://localhost:3000",
			Timeout:         10 * time.Second,
			RequestsPerHour: 50,
		},
		Server: config.ServerConfig{
			Addr:      ":3000",
			RateLimit: 1,
			Burst:     5,
		},
		Settings: config.SettingsConfig{
			Notify: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv(config.EnvAccessKey, "")
	require.NoError(t, os.Unsetenv(config.EnvAccessKey))
}

func TestViperWriteConfig(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written file must load back to the same values
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		Routine: config.RoutineConfig{
			BodyParts:    []config.BodyPart{config.Hands, config.Feet},
			ContentType:  config.NSFW,
			ImageCount:   18,
			TimePerImage: 120,
		},
		Provider: config.ProviderConfig{
			Source:          config.SourceProxy,
			BaseURL:         "https://api.unsplash.com",
			AccessKey:       "file-key",
			ProxyURL:        "http://localhost:4000",
			Timeout:         5 * time.Second,
			RequestsPerHour: 50,
		},
		Server: config.ServerConfig{
			Addr:      ":4000",
			RateLimit: 2,
			Burst:     10,
		},
		Settings: config.SettingsConfig{
			Cmd:  "notify-send done",
			Beep: true,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	t.Setenv(config.EnvAccessKey, "env-key")
	t.Setenv("GESTURE_ROUTINE_IMAGE_COUNT", "9")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Provider.AccessKey)
	assert.Equal(t, 9, cfg.Routine.ImageCount)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "env-key")
}

func TestInvalidConfigFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("routine:\n  image_count: 40\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image count must be between 6 and 24, got 40")
}
