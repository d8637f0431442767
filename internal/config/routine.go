package config

import (
	"fmt"
	"slices"
	"strings"
)

type (
	// BodyPart selects the anatomical focus of the reference images.
	BodyPart string

	// ContentType is the content rating applied to image searches.
	ContentType string
)

const (
	FullBody BodyPart = "full-body"
	Hands    BodyPart = "hands"
	Heads    BodyPart = "heads"
	Feet     BodyPart = "feet"
	Torso    BodyPart = "torso"
)

const (
	SFW  ContentType = "sfw"
	NSFW ContentType = "nsfw"
)

const (
	MinImageCount  = 6
	MaxImageCount  = 24
	ImageCountStep = 3

	// NoTimer disables the per-image countdown.
	NoTimer         = 0
	MinTimePerImage = 15
	MaxTimePerImage = 600
)

// BodyPartOption describes a body part for the configuration form.
type BodyPartOption struct {
	ID          BodyPart
	Label       string
	Description string
}

// BodyPartOptions lists every supported body part in display order.
var BodyPartOptions = []BodyPartOption{
	{
		ID:          FullBody,
		Label:       "Full Body",
		Description: "Complete figure poses with dynamic movement",
	},
	{
		ID:          Hands,
		Label:       "Hands",
		Description: "Hand gestures, finger positions, and grip studies",
	},
	{
		ID:          Heads,
		Label:       "Heads & Faces",
		Description: "Portraits, facial expressions, and head angles",
	},
	{
		ID:          Feet,
		Label:       "Feet",
		Description: "Foot anatomy, toe positions, and ankle studies",
	},
	{
		ID:          Torso,
		Label:       "Torso",
		Description: "Chest, back, shoulders, and core anatomy",
	},
}

// RoutineConfig describes a single drawing session. It is produced once by
// the configuration layers and is not modified for the lifetime of the
// session.
type RoutineConfig struct {
	ContentType ContentType `mapstructure:"content_type"`
	BodyParts   []BodyPart  `mapstructure:"body_parts"`
	ImageCount  int         `mapstructure:"image_count"`
	// TimePerImage is expressed in seconds
	TimePerImage int `mapstructure:"time_per_image"`
}

// Valid reports whether b is one of the supported body parts.
func (b BodyPart) Valid() bool {
	return slices.ContainsFunc(BodyPartOptions, func(o BodyPartOption) bool {
		return o.ID == b
	})
}

// Label returns the human readable name of the body part.
func (b BodyPart) Label() string {
	for _, o := range BodyPartOptions {
		if o.ID == b {
			return o.Label
		}
	}

	return string(b)
}

// Valid reports whether c is a supported content rating.
func (c ContentType) Valid() bool {
	return c == SFW || c == NSFW
}

// Label returns the human readable name of the content rating.
func (c ContentType) Label() string {
	if c == NSFW {
		return "Artistic Nude"
	}

	return "Safe for Work"
}

// HasTimer reports whether each image is shown for a fixed amount of time.
func (r RoutineConfig) HasTimer() bool {
	return r.TimePerImage > 0
}

// Summary returns a one-line description of the routine.
func (r RoutineConfig) Summary(total int) string {
	parts := make([]string, len(r.BodyParts))
	for i, p := range r.BodyParts {
		parts[i] = string(p)
	}

	timing := "No timer"
	if r.HasTimer() {
		timing = fmt.Sprintf("%ds", r.TimePerImage)
	}

	return fmt.Sprintf(
		"Focus: %s • Content: %s • Time per image: %s • Total images: %d",
		strings.Join(parts, ", "),
		strings.ToUpper(string(r.ContentType)),
		timing,
		total,
	)
}

// ParseBodyParts converts a list of comma-separated values to body parts,
// dropping duplicates and empty entries.
func ParseBodyParts(values []string) []BodyPart {
	var parts []BodyPart

	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			p := BodyPart(strings.ToLower(strings.TrimSpace(s)))
			if p == "" || slices.Contains(parts, p) {
				continue
			}

			parts = append(parts, p)
		}
	}

	return parts
}
