// Package provider fetches reference photos from an image API
package provider

import (
	"context"
	"fmt"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/models"
)

// Client fetches reference images for a single body part.
type Client interface {
	FetchReferenceImages(
		ctx context.Context,
		part config.BodyPart,
		contentType config.ContentType,
		count int,
	) ([]models.ImageRecord, error)
}

// Error is returned when the upstream call fails or answers with a
// non-success status.
type Error struct {
	Err        error
	BodyPart   config.BodyPart
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "failed to fetch images"
	}

	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if e.BodyPart != "" {
		return fmt.Sprintf("%s: %s", e.BodyPart, msg)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

var searchQueries = map[config.BodyPart]map[config.ContentType]string{
	config.FullBody: {
		config.SFW:  "figure drawing dynamic pose reference human anatomy action pose dance movement athletic",
		config.NSFW: "figure drawing nude reference human anatomy artistic nude pose life drawing",
	},
	config.Hands: {
		config.SFW:  "hand gesture reference drawing anatomy fingers palm artistic hand pose",
		config.NSFW: "hand anatomy reference artistic nude hand gesture life drawing",
	},
	config.Heads: {
		config.SFW:  "portrait reference face anatomy head drawing facial expression profile",
		config.NSFW: "portrait nude reference face anatomy artistic nude portrait life drawing",
	},
	config.Feet: {
		config.SFW:  "feet anatomy reference foot drawing toes ankle artistic foot pose",
		config.NSFW: "feet anatomy nude reference artistic nude foot life drawing",
	},
	config.Torso: {
		config.SFW:  "torso anatomy reference chest back shoulder artistic pose figure drawing",
		config.NSFW: "torso nude reference artistic nude chest back life drawing anatomy",
	},
}

// Query returns the search query for a body part and content rating. Unknown
// combinations fall back to the full-body SFW query.
func Query(part config.BodyPart, contentType config.ContentType) string {
	if q, ok := searchQueries[part][contentType]; ok {
		return q
	}

	return searchQueries[config.FullBody][config.SFW]
}

// New returns the client selected by the provider configuration.
func New(cfg config.ProviderConfig) (Client, error) {
	if cfg.Source == config.SourceProxy {
		return NewProxy(cfg.ProxyURL, cfg.Timeout), nil
	}

	u, err := NewUnsplash(UnsplashOptions{
		BaseURL:         cfg.BaseURL,
		AccessKey:       cfg.AccessKey,
		Timeout:         cfg.Timeout,
		RequestsPerHour: cfg.RequestsPerHour,
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}
