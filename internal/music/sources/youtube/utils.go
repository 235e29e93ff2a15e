package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var youtubeURLPattern = regexp.MustCompile(`(?:https?://)?(?:www\.|m\.|music\.)?(youtube\.com|youtu\.be)/\S+`)

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isYouTubeURL(input string) bool {
	return youtubeURLPattern.MatchString(input)
}

func isVideoURL(s string) bool {
	return strings.Contains(s, "youtube.com/watch?v=") ||
		strings.Contains(s, "music.youtube.com/watch?v=") ||
		strings.Contains(s, "youtube.com/shorts/") ||
		strings.Contains(s, "youtu.be/")
}

// isPlaylistURL matches dedicated playlist pages, not watch URLs that merely
// carry a list parameter.
func isPlaylistURL(s string) bool {
	return strings.Contains(s, "youtube.com/playlist?list=")
}

// CleanVideoURL strips tracking and timestamp parameters, keeping only the
// video ID.
func CleanVideoURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	switch host := u.Hostname(); host {
	case "youtu.be":
		if vid := strings.Trim(u.Path, "/"); vid != "" {
			return fmt.Sprintf("https://youtu.be/%s", vid)
		}
	case "www.youtube.com", "youtube.com", "m.youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			if vid := u.Query().Get("v"); vid != "" {
				return fmt.Sprintf("https://%s/watch?v=%s", host, vid)
			}
		}
	}
	return raw
}
