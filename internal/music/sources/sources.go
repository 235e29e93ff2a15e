// Package sources defines where tracks come from. A source recognizes its
// own URLs, resolves user input into playable tracks and names the streamer
// chain used to play them.
package sources

import "groovebox/internal/music/track"

const (
	SourceYouTube    = "youtube"
	SourceSoundCloud = "soundcloud"
	SourceDirect     = "direct"
)

type Source interface {
	// Match reports whether this source can handle the given input.
	Match(input string) bool

	// Resolve turns user input into one or more playable tracks.
	Resolve(input string) ([]track.Track, error)

	// Name returns the source identifier stored on resolved tracks.
	Name() string
}
