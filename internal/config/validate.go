package config

import (
	"slices"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.Routine.Validate(); err != nil {
		return err
	}

	if err := c.validateProvider(); err != nil {
		return err
	}

	if c.Log.Level != "" && !slices.Contains(logLevels, c.Log.Level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

// validateProvider validates the ProviderConfig. A missing access key is not
// an error here since it is only needed by the direct Unsplash client.
func (c *Config) validateProvider() error {
	p := c.Provider

	switch p.Source {
	case SourceUnsplash:
	case SourceProxy:
		if p.ProxyURL == "" {
			return errMissingProxyURL
		}
	default:
		return errInvalidSource.Fmt(p.Source)
	}

	if p.Timeout <= 0 {
		return errInvalidTimeout.Fmt(p.Timeout)
	}

	return nil
}

// Validate checks the routine against the supported ranges.
func (r RoutineConfig) Validate() error {
	if len(r.BodyParts) == 0 {
		return ErrNoBodyParts
	}

	for _, p := range r.BodyParts {
		if !p.Valid() {
			return errUnknownBodyPart.Fmt(p)
		}
	}

	if !r.ContentType.Valid() {
		return errInvalidContentType.Fmt(r.ContentType)
	}

	if r.ImageCount < MinImageCount || r.ImageCount > MaxImageCount {
		return errInvalidImageCount.Fmt(MinImageCount, MaxImageCount, r.ImageCount)
	}

	if r.TimePerImage != NoTimer &&
		(r.TimePerImage < MinTimePerImage || r.TimePerImage > MaxTimePerImage) {
		return errInvalidTimePerImage.Fmt(
			MinTimePerImage,
			MaxTimePerImage,
			r.TimePerImage,
		)
	}

	return nil
}
