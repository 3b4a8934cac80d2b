package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/plsapi/backend/internal/config"
	"github.com/sosodev/duration"
)

// ErrVideoNotFound is returned when the API answers without a matching item.
var ErrVideoNotFound = errors.New("video not found")

// YouTubeClient queries the YouTube Data API v3 for video metadata.
type YouTubeClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

type videoListResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func NewYouTubeClient(cfg config.YouTubeConfig) *YouTubeClient {
	apiURL := strings.TrimSuffix(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://www.googleapis.com/youtube/v3"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &YouTubeClient{
		apiURL:     apiURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// VideoDuration returns the duration of the video with the given id.
func (c *YouTubeClient) VideoDuration(ctx context.Context, videoID string) (time.Duration, error) {
	q := url.Values{
		"part": {"contentDetails"},
		"id":   {videoID},
		"key":  {c.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/videos?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("youtube videos.list: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("failed to read youtube response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("youtube videos.list returned status: %d", resp.StatusCode)
	}

	var list videoListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return 0, fmt.Errorf("failed to parse youtube response: %w", err)
	}
	if len(list.Items) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	return ParseISODuration(list.Items[0].ContentDetails.Duration)
}

// ParseISODuration converts an ISO-8601 duration such as "PT1H2M3S".
func ParseISODuration(raw string) (time.Duration, error) {
	d, err := duration.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", raw, err)
	}
	return d.ToTimeDuration(), nil
}
