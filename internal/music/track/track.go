package track

import (
	"fmt"
	"time"
)

const maxDisplayTitle = 60

// Track is a single playable item. Immutable once enqueued.
type Track struct {
	URL           string        `json:"url"`
	Title         string        `json:"title"`
	Duration      time.Duration `json:"duration"`
	Thumbnail     string        `json:"thumbnail,omitempty"`
	WebpageURL    string        `json:"webpage_url,omitempty"`
	Source        string        `json:"source"`
	RequesterID   string        `json:"requester_id,omitempty"`
	RequesterName string        `json:"requester_name,omitempty"`
	AddedAt       time.Time     `json:"added_at"`

	// StreamURL is the direct media URL. It expires, so it is refreshed
	// before each playback and never serialized.
	StreamURL string `json:"-"`
}

// DurationString renders the duration as H:MM:SS or M:SS. Zero means a live
// stream (radio, live broadcast).
func (t Track) DurationString() string {
	if t.Duration <= 0 {
		return "Live"
	}
	total := int(t.Duration.Round(time.Second).Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// DisplayTitle returns the title truncated for embeds.
func (t Track) DisplayTitle() string {
	if t.Title == "" {
		return t.URL
	}
	r := []rune(t.Title)
	if len(r) <= maxDisplayTitle {
		return t.Title
	}
	return string(r[:maxDisplayTitle-3]) + "..."
}

// Markdown returns a linked title when a webpage URL is known.
func (t Track) Markdown() string {
	title := t.DisplayTitle()
	if t.WebpageURL != "" {
		return fmt.Sprintf("[%s](%s)", title, t.WebpageURL)
	}
	return title
}
