// Package soundcloud resolves SoundCloud links and title searches. Metadata
// extraction happens at play time through yt-dlp.
package soundcloud

import (
	"strings"

	"groovebox/internal/music/sources"
	"groovebox/internal/music/track"
)

type Source struct {
	resolver *Resolver
}

func New() *Source {
	return &Source{resolver: NewResolver()}
}

func (s *Source) Name() string { return sources.SourceSoundCloud }

func (s *Source) Match(input string) bool {
	return strings.Contains(input, "soundcloud.com")
}

func (s *Source) Resolve(input string) ([]track.Track, error) {
	input = strings.TrimSpace(input)

	if isURL(input) {
		return []track.Track{{URL: input, Source: sources.SourceSoundCloud}}, nil
	}

	trackURL, err := s.resolver.SearchFirstTrackURL(input)
	if err != nil {
		return nil, err
	}
	return []track.Track{{URL: trackURL, Title: input, Source: sources.SourceSoundCloud}}, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
