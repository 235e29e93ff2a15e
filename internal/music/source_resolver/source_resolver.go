// Package source_resolver picks the right source for user input: a known
// URL goes to the source that claims it, plain text becomes a YouTube
// title search, and unclaimed URLs fall through to direct streaming.
package source_resolver

import (
	"errors"
	"strings"

	"groovebox/internal/music/sources"
	"groovebox/internal/music/sources/direct"
	"groovebox/internal/music/sources/soundcloud"
	"groovebox/internal/music/sources/youtube"
	"groovebox/internal/music/track"
)

type Resolver struct {
	youtube    *youtube.Source
	soundcloud *soundcloud.Source
	direct     *direct.Source
}

func New() *Resolver {
	return &Resolver{
		youtube:    youtube.New(),
		soundcloud: soundcloud.New(),
		direct:     direct.New(),
	}
}

// Resolve maps input to playable tracks. selectedSource forces a specific
// source; empty means auto-detect.
func (r *Resolver) Resolve(input, selectedSource string) ([]track.Track, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("empty input")
	}

	if selectedSource != "" {
		src, err := r.source(selectedSource)
		if err != nil {
			return nil, err
		}
		if isURL(input) && !src.Match(input) {
			return nil, errors.New("input does not match selected source: " + selectedSource)
		}
		return src.Resolve(input)
	}

	if !isURL(input) {
		// plain text defaults to a YouTube title search
		return r.youtube.Resolve(input)
	}

	switch {
	case r.youtube.Match(input):
		return r.youtube.Resolve(input)
	case r.soundcloud.Match(input):
		return r.soundcloud.Resolve(input)
	}
	return r.direct.Resolve(input)
}

// Search returns up to limit candidate tracks without resolving any of them
// into the queue.
func (r *Resolver) Search(query string, limit int) ([]track.Track, error) {
	return r.youtube.Search(query, limit)
}

func (r *Resolver) source(name string) (sources.Source, error) {
	switch name {
	case sources.SourceYouTube:
		return r.youtube, nil
	case sources.SourceSoundCloud:
		return r.soundcloud, nil
	case sources.SourceDirect:
		return r.direct, nil
	}
	return nil, errors.New("unknown source: " + name)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
