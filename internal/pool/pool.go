// Package pool assembles the image pool for a drawing session
package pool

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/models"
	"github.com/ayoisaiah/gesture/internal/provider"
)

// Builder fetches images for every selected body part and merges them into
// one shuffled pool.
type Builder struct {
	client provider.Client
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithRand sets the random source used to shuffle the pool.
func WithRand(rng *rand.Rand) Option {
	return func(b *Builder) {
		b.rng = rng
	}
}

// WithLogger sets the logger used by the builder.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// NewBuilder returns a Builder that fetches images with client.
func NewBuilder(client provider.Client, opts ...Option) *Builder {
	b := &Builder{
		client: client,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build requests cfg.ImageCount images for each body part concurrently. The
// first failure aborts the whole build and cancels the remaining requests.
// The merged images are shuffled and truncated to cfg.ImageCount; a smaller
// pool is not an error.
func (b *Builder) Build(
	ctx context.Context,
	cfg config.RoutineConfig,
) ([]models.ImageRecord, error) {
	if len(cfg.BodyParts) == 0 {
		return nil, config.ErrNoBodyParts
	}

	results := make([][]models.ImageRecord, len(cfg.BodyParts))

	g, gctx := errgroup.WithContext(ctx)

	for i, part := range cfg.BodyParts {
		g.Go(func() error {
			images, err := b.client.FetchReferenceImages(
				gctx,
				part,
				cfg.ContentType,
				cfg.ImageCount,
			)
			if err != nil {
				return err
			}

			results[i] = images

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.logger.WarnContext(ctx, "pool build failed", "error", err)
		return nil, err
	}

	images := slices.Concat(results...)

	b.shuffle(images)

	if len(images) > cfg.ImageCount {
		images = images[:cfg.ImageCount]
	}

	b.logger.DebugContext(
		ctx,
		"pool built",
		"body_parts", cfg.BodyParts,
		"images", len(images),
	)

	return images, nil
}

func (b *Builder) shuffle(images []models.ImageRecord) {
	swap := func(i, j int) {
		images[i], images[j] = images[j], images[i]
	}

	if b.rng != nil {
		b.rng.Shuffle(len(images), swap)
		return
	}

	rand.Shuffle(len(images), swap)
}
