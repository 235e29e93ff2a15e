package ytdlp

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"groovebox/internal/music/track"
)

type probeFragment struct {
	Duration float64 `json:"duration"`
}

type probeFormat struct {
	URL       string          `json:"url"`
	Fragments []probeFragment `json:"fragments,omitempty"`
}

type probeInfo struct {
	Title     string        `json:"title"`
	Duration  float64       `json:"duration"`
	URL       string        `json:"url"`
	Thumbnail string        `json:"thumbnail"`
	Formats   []probeFormat `json:"formats"`
}

// probe asks yt-dlp for the bestaudio metadata of a single URL.
func probe(url string) (*probeInfo, error) {
	out, err := exec.Command("yt-dlp", "-j", "-f", "bestaudio", url).Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp probe error: %w", err)
	}

	var info probeInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("yt-dlp json error: %w", err)
	}

	// live streams report duration only on fragments, if at all
	if info.Duration == 0 && len(info.Formats) > 0 && len(info.Formats[0].Fragments) > 0 {
		info.Duration = info.Formats[0].Fragments[0].Duration
	}
	return &info, nil
}

// streamLink returns the direct media URL from a probe result.
func (p *probeInfo) streamLink() (string, error) {
	link := strings.TrimSpace(p.URL)
	if link == "" && len(p.Formats) > 0 {
		link = strings.TrimSpace(p.Formats[0].URL)
	}
	if link == "" {
		return "", errors.New("yt-dlp returned no stream URL")
	}
	return link, nil
}

// apply fills in track fields that resolution may have left blank.
func (p *probeInfo) apply(t *track.Track) {
	t.Duration = time.Duration(p.Duration * float64(time.Second))
	if t.Title == "" {
		t.Title = p.Title
	}
	if t.Thumbnail == "" {
		t.Thumbnail = p.Thumbnail
	}
}
