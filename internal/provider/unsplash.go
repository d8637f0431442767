package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/models"
)

const (
	// maxRandomCount is the largest count accepted by /photos/random.
	maxRandomCount = 30

	defaultBaseURL = "https://api.unsplash.com"
)

// UnsplashOptions configures an Unsplash client.
type UnsplashOptions struct {
	HTTPClient      *http.Client
	BaseURL         string
	AccessKey       string
	Timeout         time.Duration
	RequestsPerHour int
}

// Unsplash talks to the Unsplash API directly.
type Unsplash struct {
	http      *http.Client
	limiter   *rate.Limiter
	baseURL   string
	accessKey string
}

type unsplashPhoto struct {
	ID             string `json:"id"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
	Links struct {
		DownloadLocation string `json:"download_location"`
	} `json:"links"`
}

// NewUnsplash creates an Unsplash client. Requests are spread according to
// the hourly quota of the access key when RequestsPerHour is positive.
func NewUnsplash(opts UnsplashOptions) (*Unsplash, error) {
	if strings.TrimSpace(opts.AccessKey) == "" {
		return nil, ErrMissingAccessKey
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerHour > 0 {
		limiter = rate.NewLimiter(
			rate.Every(time.Hour/time.Duration(opts.RequestsPerHour)),
			opts.RequestsPerHour,
		)
	}

	return &Unsplash{
		http:      httpClient,
		limiter:   limiter,
		baseURL:   baseURL,
		accessKey: opts.AccessKey,
	}, nil
}

// FetchReferenceImages requests count random portrait photos matching the
// query for the body part and content rating.
func (u *Unsplash) FetchReferenceImages(
	ctx context.Context,
	part config.BodyPart,
	contentType config.ContentType,
	count int,
) ([]models.ImageRecord, error) {
	count = min(max(count, 1), maxRandomCount)

	if err := u.limiter.Wait(ctx); err != nil {
		return nil, &Error{BodyPart: part, Message: "rate limit exceeded", Err: err}
	}

	q := url.Values{}
	q.Set("query", Query(part, contentType))
	q.Set("count", strconv.Itoa(count))
	q.Set("orientation", "portrait")

	endpoint := fmt.Sprintf("%s/photos/random?%s", u.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, &Error{BodyPart: part, Err: err}
	}

	req.Header.Set("Authorization", "Client-ID "+u.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.http.Do(req)
	if err != nil {
		return nil, &Error{BodyPart: part, Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{BodyPart: part, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			BodyPart:   part,
			StatusCode: resp.StatusCode,
			Message:    "failed to fetch from Unsplash",
		}
	}

	photos, err := decodePhotos(body)
	if err != nil {
		return nil, &Error{BodyPart: part, Err: errDecodeResponse.Wrap(err)}
	}

	images := make([]models.ImageRecord, len(photos))
	for i := range photos {
		images[i] = photos[i].toRecord(part)
	}

	return images, nil
}

// decodePhotos accepts both the array returned when count is given and the
// single object returned without it.
func decodePhotos(body []byte) ([]unsplashPhoto, error) {
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '{' {
		var p unsplashPhoto

		if err := json.Unmarshal(body, &p); err != nil {
			return nil, err
		}

		return []unsplashPhoto{p}, nil
	}

	var photos []unsplashPhoto

	if err := json.Unmarshal(body, &photos); err != nil {
		return nil, err
	}

	return photos, nil
}

func (p *unsplashPhoto) toRecord(part config.BodyPart) models.ImageRecord {
	alt := p.AltDescription
	if alt == "" {
		alt = fmt.Sprintf("%s gesture drawing reference", part)
	}

	return models.ImageRecord{
		ID:                     p.ID,
		URL:                    p.URLs.Regular,
		ThumbnailURL:           p.URLs.Thumb,
		AltText:                alt,
		Photographer:           p.User.Name,
		PhotographerProfileURL: p.User.Links.HTML,
		DownloadLocation:       p.Links.DownloadLocation,
		BodyPart:               part,
	}
}
