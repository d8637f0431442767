package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	ContentType  string
	Source       string
	ProxyURL     string
	BodyParts    []string
	ImageCount   int
	TimePerImage int
	SetCount     bool
	SetTime      bool
	SkipPrompt   bool
	Debug        bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were explicitly set override earlier layers.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			BodyParts:    ctx.StringSlice("body-part"),
			ContentType:  ctx.String("content-type"),
			ImageCount:   ctx.Int("count"),
			TimePerImage: ctx.Int("time"),
			SetCount:     ctx.IsSet("count"),
			SetTime:      ctx.IsSet("time"),
			Source:       ctx.String("source"),
			ProxyURL:     ctx.String("proxy-url"),
			SkipPrompt:   ctx.Bool("yes"),
			Debug:        ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if parts := ParseBodyParts(opts.BodyParts); len(parts) > 0 {
		c.Routine.BodyParts = parts
	}

	if opts.ContentType != "" {
		c.Routine.ContentType = ContentType(opts.ContentType)
	}

	if opts.SetCount {
		c.Routine.ImageCount = opts.ImageCount
	}

	if opts.SetTime {
		c.Routine.TimePerImage = opts.TimePerImage
	}

	if opts.Source != "" {
		c.Provider.Source = opts.Source
	}

	if opts.ProxyURL != "" {
		c.Provider.ProxyURL = opts.ProxyURL
	}

	if opts.Debug {
		c.Log.Level = "debug"
	}

	c.CLI.SkipPrompt = opts.SkipPrompt
}
