package source_resolver

import (
	"testing"

	"groovebox/internal/music/sources"
)

func TestResolveDirectURLDetection(t *testing.T) {
	r := New()

	tests := []struct {
		input string
		want  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", sources.SourceYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", sources.SourceYouTube},
		{"https://soundcloud.com/artist/song", sources.SourceSoundCloud},
		{"https://stream.example.com/radio.mp3", sources.SourceDirect},
	}
	for _, tt := range tests {
		tracks, err := r.Resolve(tt.input, "")
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", tt.input, err)
		}
		if len(tracks) != 1 {
			t.Fatalf("Resolve(%q) returned %d tracks, want 1", tt.input, len(tracks))
		}
		if tracks[0].Source != tt.want {
			t.Errorf("Resolve(%q) source = %q, want %q", tt.input, tracks[0].Source, tt.want)
		}
	}
}

func TestResolveRejectsMismatchedSource(t *testing.T) {
	r := New()
	if _, err := r.Resolve("https://soundcloud.com/artist/song", sources.SourceYouTube); err == nil {
		t.Fatal("expected error for soundcloud URL forced to youtube source")
	}
}

func TestResolveRejectsEmptyInput(t *testing.T) {
	r := New()
	if _, err := r.Resolve("   ", ""); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestResolveUnknownSource(t *testing.T) {
	r := New()
	if _, err := r.Resolve("anything", "spotify"); err == nil {
		t.Fatal("expected error for unknown source name")
	}
}
