package soundcloud

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
	trackLinkPattern = regexp.MustCompile(`(?s)<a class="result__url"[^>]*>\s*(soundcloud\.com/[^<]+)\s*</a>`)

	ErrNoTrackMatch = errors.New("no track found for the given query")
)

// Resolver searches SoundCloud via a site-restricted DuckDuckGo query, since
// SoundCloud has no anonymous search endpoint.
type Resolver struct {
	Client *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (r *Resolver) SearchFirstTrackURL(query string) (string, error) {
	searchURL := fmt.Sprintf("https://duckduckgo.com/html/?q=site:soundcloud.com+%s", url.QueryEscape(query))

	req, err := http.NewRequest(http.MethodGet, searchURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	matches := trackLinkPattern.FindSubmatch(body)
	if len(matches) < 2 {
		return "", ErrNoTrackMatch
	}
	return "https://" + string(matches[1]), nil
}
