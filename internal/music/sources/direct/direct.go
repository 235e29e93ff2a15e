// Package direct handles plain media URLs: internet radio streams and
// direct links to audio files. It is the catch-all for URLs no other
// source claims.
package direct

import (
	"errors"
	"net/url"
	"path"
	"strings"

	"groovebox/internal/music/sources"
	"groovebox/internal/music/track"
)

type Source struct{}

func New() *Source { return &Source{} }

func (s *Source) Name() string { return sources.SourceDirect }

func (s *Source) Match(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func (s *Source) Resolve(input string) ([]track.Track, error) {
	input = strings.TrimSpace(input)
	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return nil, errors.New("not a valid stream URL")
	}

	title := path.Base(u.Path)
	if title == "" || title == "/" || title == "." {
		title = u.Host
	}

	return []track.Track{{
		URL:    input,
		Title:  title,
		Source: sources.SourceDirect,
	}}, nil
}
