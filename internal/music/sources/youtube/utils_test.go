package youtube

import "testing"

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"https://music.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://soundcloud.com/artist/song", false},
		{"never gonna give you up", false},
	}
	for _, tt := range tests {
		if got := isYouTubeURL(tt.input); got != tt.want {
			t.Errorf("isYouTubeURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCleanVideoURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=RDdQw4w9WgXcQ&t=42",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"https://youtu.be/dQw4w9WgXcQ?t=42",
			"https://youtu.be/dQw4w9WgXcQ",
		},
		{
			"https://music.youtube.com/watch?v=dQw4w9WgXcQ&si=abc",
			"https://music.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{"not a url at all", "not a url at all"},
	}
	for _, tt := range tests {
		if got := CleanVideoURL(tt.input); got != tt.want {
			t.Errorf("CleanVideoURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsPlaylistURL(t *testing.T) {
	if !isPlaylistURL("https://www.youtube.com/playlist?list=PL123") {
		t.Error("playlist URL not recognized")
	}
	if isPlaylistURL("https://www.youtube.com/watch?v=abc&list=PL123") {
		t.Error("watch URL with list param should not resolve as a playlist")
	}
}
