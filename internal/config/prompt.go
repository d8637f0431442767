package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// timerOptions are the per-image durations offered by the routine form.
var timerOptions = []struct {
	Label   string
	Seconds int
}{
	{"15 seconds", 15},
	{"30 seconds", 30},
	{"45 seconds", 45},
	{"1 minute", 60},
	{"2 minutes", 120},
	{"5 minutes", 300},
	{"10 minutes", 600},
	{"No timer", NoTimer},
}

// WithPromptConfig returns an Option that lets the user adjust the routine
// through an interactive form. The form is pre-filled with the values from
// the earlier layers and is skipped when --yes was passed.
func WithPromptConfig(enabled bool) Option {
	return func(c *Config) error {
		if !enabled || c.CLI.SkipPrompt {
			return nil
		}

		routine, err := promptRoutine(c.Routine)
		if err != nil {
			return errPromptFailed.Wrap(err)
		}

		c.Routine = routine

		return nil
	}
}

// promptRoutine handles the interactive configuration process.
func promptRoutine(current RoutineConfig) (RoutineConfig, error) {
	r := current

	bodyParts := make([]huh.Option[BodyPart], len(BodyPartOptions))
	for i, o := range BodyPartOptions {
		bodyParts[i] = huh.NewOption(o.Label+" - "+o.Description, o.ID)
	}

	counts := []huh.Option[int]{}
	for n := MinImageCount; n <= MaxImageCount; n += ImageCountStep {
		counts = append(counts, huh.NewOption(fmt.Sprintf("%d images", n), n))
	}

	timers := make([]huh.Option[int], len(timerOptions))
	for i, o := range timerOptions {
		timers[i] = huh.NewOption(o.Label, o.Seconds)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[BodyPart]().
				Title("Body parts focus").
				Description("Choose which body parts you want to practice drawing").
				Options(bodyParts...).
				Validate(func(v []BodyPart) error {
					if len(v) == 0 {
						return ErrNoBodyParts
					}

					return nil
				}).
				Value(&r.BodyParts),
		),
		huh.NewGroup(
			huh.NewSelect[ContentType]().
				Title("Content type").
				Options(
					huh.NewOption(SFW.Label(), SFW),
					huh.NewOption(NSFW.Label(), NSFW),
				).
				Value(&r.ContentType),
			huh.NewSelect[int]().
				Title("Number of images").
				Options(counts...).
				Value(&r.ImageCount),
			huh.NewSelect[int]().
				Title("Time per image").
				Options(timers...).
				Value(&r.TimePerImage),
		),
	)

	err := form.Run()
	if err != nil {
		return current, fmt.Errorf("form interaction failed: %w", err)
	}

	return r, nil
}
