package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/models"
)

// ImagesPath is the route served by the image proxy.
const ImagesPath = "/api/images"

// ImagesResponse is the body returned by the image proxy.
type ImagesResponse struct {
	Error  string               `json:"error,omitempty"`
	Images []models.ImageRecord `json:"images,omitempty"`
}

// Proxy fetches images through a gesture image proxy, which holds the
// upstream credentials.
type Proxy struct {
	http    *http.Client
	baseURL string
}

// NewProxy creates a client for the proxy at baseURL.
func NewProxy(baseURL string, timeout time.Duration) *Proxy {
	return &Proxy{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchReferenceImages asks the proxy for count images.
func (p *Proxy) FetchReferenceImages(
	ctx context.Context,
	part config.BodyPart,
	contentType config.ContentType,
	count int,
) ([]models.ImageRecord, error) {
	q := url.Values{}
	q.Set("bodyPart", string(part))
	q.Set("contentType", string(contentType))
	q.Set("count", strconv.Itoa(count))

	endpoint := fmt.Sprintf("%s%s?%s", p.baseURL, ImagesPath, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, &Error{BodyPart: part, Err: err}
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, &Error{BodyPart: part, Err: err}
	}

	defer resp.Body.Close()

	var data ImagesResponse

	decodeErr := json.NewDecoder(resp.Body).Decode(&data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := data.Error
		if decodeErr != nil || msg == "" {
			msg = "failed to fetch images"
		}

		return nil, &Error{
			BodyPart:   part,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	if decodeErr != nil {
		return nil, &Error{BodyPart: part, Err: errDecodeResponse.Wrap(decodeErr)}
	}

	return data.Images, nil
}
