package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/gesture/internal/config"
)

func validRoutine() config.RoutineConfig {
	return config.RoutineConfig{
		BodyParts:    []config.BodyPart{config.Hands},
		ContentType:  config.SFW,
		ImageCount:   6,
		TimePerImage: 30,
	}
}

func TestRoutineValidate(t *testing.T) {
	cases := []struct {
		Name    string
		Mutate  func(r *config.RoutineConfig)
		WantErr bool
	}{
		{Name: "valid routine", Mutate: func(*config.RoutineConfig) {}},
		{
			Name:   "no timer",
			Mutate: func(r *config.RoutineConfig) { r.TimePerImage = config.NoTimer },
		},
		{
			Name:   "upper bounds",
			Mutate: func(r *config.RoutineConfig) { r.ImageCount, r.TimePerImage = 24, 600 },
		},
		{
			Name:    "empty body parts",
			Mutate:  func(r *config.RoutineConfig) { r.BodyParts = nil },
			WantErr: true,
		},
		{
			Name:    "unknown body part",
			Mutate:  func(r *config.RoutineConfig) { r.BodyParts = []config.BodyPart{"elbows"} },
			WantErr: true,
		},
		{
			Name:    "unknown content type",
			Mutate:  func(r *config.RoutineConfig) { r.ContentType = "pg" },
			WantErr: true,
		},
		{
			Name:    "too few images",
			Mutate:  func(r *config.RoutineConfig) { r.ImageCount = 5 },
			WantErr: true,
		},
		{
			Name:    "too many images",
			Mutate:  func(r *config.RoutineConfig) { r.ImageCount = 25 },
			WantErr: true,
		},
		{
			Name:    "timer too short",
			Mutate:  func(r *config.RoutineConfig) { r.TimePerImage = 14 },
			WantErr: true,
		},
		{
			Name:    "timer too long",
			Mutate:  func(r *config.RoutineConfig) { r.TimePerImage = 601 },
			WantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			r := validRoutine()
			tc.Mutate(&r)

			err := r.Validate()
			if tc.WantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEmptyBodyPartsIsPrecondition(t *testing.T) {
	r := validRoutine()
	r.BodyParts = []config.BodyPart{}

	assert.True(t, errors.Is(r.Validate(), config.ErrNoBodyParts))
}

func TestParseBodyParts(t *testing.T) {
	got := config.ParseBodyParts([]string{"hands, Feet", "hands", "", "torso"})

	assert.Equal(t, []config.BodyPart{config.Hands, config.Feet, config.Torso}, got)
}

func TestRoutineSummary(t *testing.T) {
	r := config.RoutineConfig{
		BodyParts:    []config.BodyPart{config.Hands, config.Feet},
		ContentType:  config.SFW,
		ImageCount:   12,
		TimePerImage: 60,
	}

	assert.Equal(
		t,
		"Focus: hands, feet • Content: SFW • Time per image: 60s • Total images: 10",
		r.Summary(10),
	)

	r.TimePerImage = config.NoTimer

	assert.Contains(t, r.Summary(12), "Time per image: No timer")
}
