package youtube

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

var (
	videoPattern    = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]{11})`)
	ErrNoVideoMatch = errors.New("no video found for the given search")
)

// Resolver turns a free-text search into the top result's watch URL by
// scraping the results page. Cheaper than the Data API and needs no key.
type Resolver struct {
	BaseURL string
	Client  *http.Client
}

// NewResolver builds a resolver on the given HTTP client, so search
// traffic rides the same proxy as the rest of the YouTube calls. A nil
// client gets a plain one with a timeout.
func NewResolver(client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Resolver{
		BaseURL: "https://www.youtube.com",
		Client:  client,
	}
}

// SearchFirstVideoURL returns the watch URL of the first search result.
func (r *Resolver) SearchFirstVideoURL(query string) (string, error) {
	searchURL := fmt.Sprintf("%s/results?search_query=%s", r.BaseURL, url.QueryEscape(query))

	resp, err := r.Client.Get(searchURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("YouTube search failed with status code %v", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	matches := videoPattern.FindStringSubmatch(string(body))
	if len(matches) < 2 {
		return "", ErrNoVideoMatch
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", matches[1]), nil
}
