package provider

import "github.com/ayoisaiah/gesture/internal/apperr"

var (
	// ErrMissingAccessKey is returned when the Unsplash client has no key.
	ErrMissingAccessKey = &apperr.Error{
		Message: "Unsplash API key not configured: set UNSPLASH_ACCESS_KEY or provider.access_key",
	}

	errDecodeResponse = &apperr.Error{
		Message: "unable to decode provider response",
	}
)
