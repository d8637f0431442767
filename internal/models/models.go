package models

import (
	"github.com/ayoisaiah/gesture/internal/config"
)

// ImageRecord is a single reference photo. Records are not modified after
// they are fetched.
type ImageRecord struct {
	ID                     string `json:"id"`
	URL                    string `json:"url"`
	ThumbnailURL           string `json:"thumbnail_url"`
	AltText                string `json:"alt_text"`
	Photographer           string `json:"photographer"`
	PhotographerProfileURL string `json:"photographer_profile_url"`
	// DownloadLocation is the provider endpoint used to register a download
	DownloadLocation string          `json:"download_location,omitempty"`
	BodyPart         config.BodyPart `json:"body_part"`
}
