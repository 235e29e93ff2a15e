package music

import (
	"strings"
	"testing"
	"time"

	"groovebox/internal/music/track"
)

func sampleTracks(n int) []track.Track {
	tracks := make([]track.Track, n)
	for i := range tracks {
		tracks[i] = track.Track{
			Title:         "track " + string(rune('a'+i%26)),
			URL:           "https://example.com",
			Duration:      3 * time.Minute,
			RequesterName: "alice",
		}
	}
	return tracks
}

func TestFormatQueuePageMarksCurrent(t *testing.T) {
	out, pages := formatQueuePage(sampleTracks(3), 1, 1)
	if pages != 1 {
		t.Fatalf("pages = %d, want 1", pages)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "▶") {
		t.Fatalf("current track not marked: %q", lines[1])
	}
	if strings.HasPrefix(lines[0], "▶") {
		t.Fatalf("non-current track marked: %q", lines[0])
	}
}

func TestFormatQueuePagePagination(t *testing.T) {
	tracks := sampleTracks(25)

	out, pages := formatQueuePage(tracks, 0, 3)
	if pages != 3 {
		t.Fatalf("pages = %d, want 3", pages)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("last page lines = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "21.") {
		t.Fatalf("last page starts with %q, want entry 21", lines[0])
	}

	// out-of-range page clamps
	if clamped, _ := formatQueuePage(tracks, 0, 99); clamped != out {
		t.Fatal("page past the end should clamp to the last page")
	}
}

func TestFormatQueuePageEmpty(t *testing.T) {
	out, pages := formatQueuePage(nil, 0, 1)
	if pages != 1 || !strings.Contains(out, "empty") {
		t.Fatalf("empty queue render = %q, pages = %d", out, pages)
	}
}

func TestProgressBar(t *testing.T) {
	if bar := progressBar(0, 0, 12); bar != "🔴 LIVE" {
		t.Fatalf("zero total = %q, want live marker", bar)
	}

	bar := progressBar(time.Minute, 2*time.Minute, 12)
	if !strings.Contains(bar, "🔘") {
		t.Fatalf("bar missing knob: %q", bar)
	}
	if strings.Index(bar, "🔘") == 0 {
		t.Fatalf("halfway knob at start: %q", bar)
	}

	// position past the end stays within the bar
	end := progressBar(3*time.Minute, 2*time.Minute, 12)
	if !strings.HasSuffix(end, "🔘") {
		t.Fatalf("overrun knob not at end: %q", end)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"83", 83 * time.Second, false},
		{"1:23", 83 * time.Second, false},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{" 2:00 ", 2 * time.Minute, false},
		{"", 0, true},
		{"1:2:3:4", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePosition(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePosition(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePosition(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePosition(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
