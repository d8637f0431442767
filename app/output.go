package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ayoisaiah/gesture/internal/models"
	"github.com/ayoisaiah/gesture/internal/ui"
)

// imagesTable returns the rows printed by the images command, header first.
func imagesTable(images []models.ImageRecord) [][]string {
	rows := make([][]string, 0, len(images)+1)

	rows = append(rows, []string{"#", "BODY PART", "PHOTOGRAPHER", "DESCRIPTION", "URL"})

	for i := range images {
		img := images[i]

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ui.Tag(img.BodyPart.Label()),
			ui.Credit(img.Photographer),
			img.AltText,
			img.URL,
		})
	}

	return rows
}

// printImagesJSON writes images as an indented JSON array.
func printImagesJSON(w io.Writer, images []models.ImageRecord) error {
	if images == nil {
		images = []models.ImageRecord{}
	}

	b, err := json.MarshalIndent(images, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
