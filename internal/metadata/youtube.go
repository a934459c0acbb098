package metadata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"
	youtubeWatchURL  = "https://www.youtube.com/watch?v="
)

type YouTubeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		baseURL: youtubeSearchURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FindTrailer searches YouTube for "<title> trailer" and returns the watch
// URL of the best-ranked result. A search with no results, or whose top hit
// is not a playable video, yields "" without an error: a missing trailer is
// not a failure. Only transport problems surface as errors, and callers are
// expected to treat those as "no trailer" too.
func (c *YouTubeClient) FindTrailer(title string) (string, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("q", title+" trailer")
	q.Set("maxResults", "1")
	q.Set("key", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return "", fmt.Errorf("youtube search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("youtube search: status %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			ID struct {
				Kind    string `json:"kind"`
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("parse youtube response: %w", err)
	}

	if len(payload.Items) == 0 {
		return "", nil
	}
	top := payload.Items[0].ID
	if top.Kind != "youtube#video" || top.VideoID == "" {
		return "", nil
	}
	return youtubeWatchURL + top.VideoID, nil
}
