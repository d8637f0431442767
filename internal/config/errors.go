package config

import "github.com/ayoisaiah/gesture/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPromptFailed = &apperr.Error{
		Message: "routine form failed",
	}

	// ErrNoBodyParts is returned when a routine selects no body part.
	ErrNoBodyParts = &apperr.Error{
		Message: "select at least one body part",
	}

	errUnknownBodyPart = &apperr.Error{
		Message: "unknown body part: %s (must be one of full-body, hands, heads, feet, torso)",
	}

	errInvalidContentType = &apperr.Error{
		Message: "content type must be sfw or nsfw, got %q",
	}

	errInvalidImageCount = &apperr.Error{
		Message: "image count must be between %d and %d, got %d",
	}

	errInvalidTimePerImage = &apperr.Error{
		Message: "time per image must be 0 (no timer) or between %d and %d seconds, got %d",
	}

	errInvalidSource = &apperr.Error{
		Message: "provider source must be unsplash or proxy, got %q",
	}

	errMissingProxyURL = &apperr.Error{
		Message: "provider.proxy_url must be set when the proxy source is used",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "provider timeout must be positive, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn, error, got %q",
	}
)
