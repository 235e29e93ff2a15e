// Package youtube resolves YouTube URLs, playlists and title searches into
// tracks. Video pages and search results are scraped directly; the heavier
// metadata work is left to the streamers at play time.
package youtube

import (
	"errors"
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

func (s *Source) Name() string { return sources.SourceYouTube }

func (s *Source) Match(input string) bool {
	return isYouTubeURL(input)
}

func (s *Source) Resolve(input string) ([]track.Track, error) {
	input = strings.TrimSpace(input)

	switch {
	case isPlaylistURL(input):
		urls, err := s.resolver.PlaylistVideoURLs(input)
		if err != nil {
			return nil, err
		}
		tracks := make([]track.Track, 0, len(urls))
		for _, u := range urls {
			tracks = append(tracks, track.Track{URL: u, Source: sources.SourceYouTube})
		}
		return tracks, nil

	case isVideoURL(input):
		return []track.Track{{URL: CleanVideoURL(input), Source: sources.SourceYouTube}}, nil

	case isURL(input):
		return nil, errors.New("unrecognized YouTube URL format")
	}

	// plain text, search by title
	videoURL, err := s.resolver.SearchFirstVideoURL(input)
	if err != nil {
		return nil, err
	}
	return []track.Track{{URL: videoURL, Title: input, Source: sources.SourceYouTube}}, nil
}

// Search returns up to limit candidate tracks for a query, for letting the
// user pick one instead of auto-playing the first hit.
func (s *Source) Search(query string, limit int) ([]track.Track, error) {
	results, err := s.resolver.SearchVideos(query, limit)
	if err != nil {
		return nil, err
	}
	tracks := make([]track.Track, 0, len(results))
	for _, r := range results {
		tracks = append(tracks, track.Track{
			URL:        r.URL,
			Title:      r.Title,
			Duration:   r.Duration,
			WebpageURL: r.URL,
			Source:     sources.SourceYouTube,
		})
	}
	return tracks, nil
}
