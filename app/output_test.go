package app

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/models"
	"github.com/ayoisaiah/gesture/internal/testutil"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func sampleImages() []models.ImageRecord {
	return []models.ImageRecord{
		{
			ID:                     "kX9mQ2",
			URL:                    "https://images.unsplash.com/photo-1?w=1080",
			ThumbnailURL:           "https://images.unsplash.com/photo-1?w=200",
			AltText:                "open palm against a dark background",
			Photographer:           "Jane Doe",
			PhotographerProfileURL: "https://unsplash.com/@janedoe",
			BodyPart:               config.Hands,
		},
		{
			ID:                     "Lp3Tz8",
			URL:                    "https://images.unsplash.com/photo-2?w=1080",
			ThumbnailURL:           "https://images.unsplash.com/photo-2?w=200",
			AltText:                "feet gesture drawing reference",
			Photographer:           "Sam Lee",
			PhotographerProfileURL: "https://unsplash.com/@samlee",
			BodyPart:               config.Feet,
		},
	}
}

func TestPrintImagesJSON(t *testing.T) {
	cases := []struct {
		TestCase
		images []models.ImageRecord
	}{
		{
			TestCase: TestCase{Name: "two images", GoldenFile: "images_json"},
			images:   sampleImages(),
		},
		{
			TestCase: TestCase{Name: "empty pool", GoldenFile: "images_json_empty"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, printImagesJSON(&buf, tc.images))

			tc.Snapshot = buf.Bytes()

			testutil.CompareGoldenFile(t, tc.TestCase)
		})
	}
}

func TestImagesTable(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	want := [][]string{
		{"#", "BODY PART", "PHOTOGRAPHER", "DESCRIPTION", "URL"},
		{"1", "Hands", "Jane Doe", "open palm against a dark background", "https://images.unsplash.com/photo-1?w=1080"},
		{"2", "Feet", "Sam Lee", "feet gesture drawing reference", "https://images.unsplash.com/photo-2?w=1080"},
	}

	if diff := cmp.Diff(want, imagesTable(sampleImages())); diff != "" {
		t.Fatalf("imagesTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestWithRoutine(t *testing.T) {
	r := config.RoutineConfig{
		BodyParts:    []config.BodyPart{config.Torso},
		ContentType:  config.NSFW,
		ImageCount:   9,
		TimePerImage: 45,
	}

	c := &config.Config{CLI: config.CLIConfig{SkipPrompt: true}}

	require.NoError(t, withRoutine(r)(c))

	assert.Equal(t, r, c.Routine)
	assert.False(t, c.CLI.SkipPrompt, "the form is shown again after leaving the slideshow")
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}
