package youtube

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/exec"
	"regexp"
	"time"
)

var (
	videoPattern    = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]+)(?:\\u0026list=([a-zA-Z0-9_-]+))?[^"]*`)
	watchURLPattern = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]{11})`)

	ErrNoVideoMatch  = errors.New("no video found for the given query")
	ErrEmptyPlaylist = errors.New("no video URLs found in the playlist")
)

// Resolver finds video URLs via the public YouTube HTML pages and, for
// multi-result searches, via yt-dlp.
type Resolver struct {
	BaseURL string
	Client  *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		BaseURL: "https://www.youtube.com",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchFirstVideoURL scrapes the results page and returns the top hit.
func (r *Resolver) SearchFirstVideoURL(query string) (string, error) {
	body, err := r.fetch(fmt.Sprintf("%s/results?search_query=%s", r.BaseURL, url.QueryEscape(query)))
	if err != nil {
		return "", err
	}

	matches := videoPattern.FindSubmatch(body)
	if len(matches) < 2 {
		return "", ErrNoVideoMatch
	}

	resultURL := fmt.Sprintf("%s/watch?v=%s", r.BaseURL, matches[1])
	if len(matches) > 2 && len(matches[2]) > 0 {
		resultURL += "&list=" + string(matches[2])
	}
	return resultURL, nil
}

// SearchResult is one candidate video from a multi-result search.
type SearchResult struct {
	URL      string
	Title    string
	Duration time.Duration
}

// SearchVideos runs a yt-dlp flat search and returns up to limit results
// with titles, one JSON object per line.
func (r *Resolver) SearchVideos(query string, limit int) ([]SearchResult, error) {
	if limit < 1 {
		limit = 1
	}
	out, err := exec.Command("yt-dlp",
		"-j", "--flat-playlist",
		fmt.Sprintf("ytsearch%d:%s", limit, query),
	).Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp search error: %w", err)
	}

	var results []SearchResult
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		var entry struct {
			ID       string  `json:"id"`
			URL      string  `json:"url"`
			Title    string  `json:"title"`
			Duration float64 `json:"duration"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		link := entry.URL
		if link == "" && entry.ID != "" {
			link = fmt.Sprintf("%s/watch?v=%s", r.BaseURL, entry.ID)
		}
		if link == "" {
			continue
		}
		results = append(results, SearchResult{
			URL:      link,
			Title:    entry.Title,
			Duration: time.Duration(entry.Duration * float64(time.Second)),
		})
	}
	if len(results) == 0 {
		return nil, ErrNoVideoMatch
	}
	return results, nil
}

// PlaylistVideoURLs scrapes a playlist or mix page for its video URLs.
func (r *Resolver) PlaylistVideoURLs(playlistURL string) ([]string, error) {
	body, err := r.fetch(playlistURL)
	if err != nil {
		return nil, err
	}

	matches := watchURLPattern.FindAllSubmatch(body, -1)
	seen := make(map[string]struct{}, len(matches))
	var urls []string
	for _, m := range matches {
		u := fmt.Sprintf("%s/watch?v=%s", r.BaseURL, m[1])
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return urls, nil
}

func (r *Resolver) fetch(pageURL string) ([]byte, error) {
	resp, err := r.Client.Get(pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("YouTube fetch failed with status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
