package kkdai

import (
	"fmt"
	"net/url"
	"strings"
)

// videoID pulls the YouTube video ID out of watch, short-link and shorts URLs.
func videoID(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("bad youtube URL: %w", err)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		if rest, ok := strings.CutPrefix(strings.Trim(u.Path, "/"), "shorts/"); ok && rest != "" {
			return rest, nil
		}
	}
	return "", fmt.Errorf("no video ID in URL %q", raw)
}
