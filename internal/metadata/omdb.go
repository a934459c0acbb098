// Package metadata talks to the third-party title and trailer APIs. The
// clients are stateless values constructed once and safe for concurrent use.
package metadata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cinelog/internal/fault"
)

const omdbBaseURL = "http://www.omdbapi.com/"

// MovieMetadata is the subset of an OMDb title record the application
// displays and stores. Fields keep the upstream string forms, including the
// "N/A" convention for absent values.
type MovieMetadata struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	Metascore  string `json:"Metascore"`
}

type OMDbClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOMDbClient(apiKey string) *OMDbClient {
	return &OMDbClient{
		baseURL: omdbBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup resolves a free-text title against OMDb. The title is encoded for
// transport only; the caller keeps the original string as its display key.
// Outcomes: metadata, fault.ErrNotFound (upstream has no such title or
// answered with a non-success status), or fault.ErrTransient (network/I/O).
func (c *OMDbClient) Lookup(title string) (*MovieMetadata, error) {
	q := url.Values{}
	q.Set("t", title)
	q.Set("plot", "full")
	q.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: omdb request: %v", fault.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: omdb returned status %d for %q", fault.ErrNotFound, resp.StatusCode, title)
	}

	var payload struct {
		Response string `json:"Response"`
		Error    string `json:"Error"`
		MovieMetadata
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: parse omdb response: %v", fault.ErrTransient, err)
	}
	if payload.Response == "False" {
		return nil, fmt.Errorf("%w: omdb: %s (title %q)", fault.ErrNotFound, payload.Error, title)
	}

	meta := payload.MovieMetadata
	return &meta, nil
}
