package track

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDurationString(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"live", 0, "Live"},
		{"seconds", 42 * time.Second, "0:42"},
		{"minutes", 3*time.Minute + 5*time.Second, "3:05"},
		{"hours", time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{"negative", -time.Second, "Live"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Track{Duration: tc.d}.DurationString()
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDisplayTitleTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := Track{Title: long}.DisplayTitle()
	if len([]rune(got)) != 60 {
		t.Fatalf("expected 60 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}

	short := Track{Title: "short"}
	if short.DisplayTitle() != "short" {
		t.Fatalf("short title must pass through unchanged")
	}
}

func TestDisplayTitleFallsBackToURL(t *testing.T) {
	tr := Track{URL: "https://example.com/stream"}
	if tr.DisplayTitle() != tr.URL {
		t.Fatalf("expected URL fallback, got %q", tr.DisplayTitle())
	}
}

func TestStreamURLNotSerialized(t *testing.T) {
	tr := Track{
		URL:       "https://youtube.com/watch?v=abc",
		Title:     "Song",
		StreamURL: "https://cdn.example.com/expiring",
	}
	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "expiring") {
		t.Fatal("stream URL must not be persisted")
	}

	var back Track
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.URL != tr.URL || back.Title != tr.Title {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if back.StreamURL != "" {
		t.Fatalf("stream URL leaked through round trip: %q", back.StreamURL)
	}
}
