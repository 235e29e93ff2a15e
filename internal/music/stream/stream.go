// Package stream opens PCM streams for tracks and pushes them to a voice
// channel as opus frames. Each source has an ordered chain of streamer
// modes; opening walks the chain until one works.
package stream

import (
	"fmt"
	"io"
	"log"
	"time"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/parsers/ffmpeg"
	"groovebox/internal/music/parsers/kkdai"
	"groovebox/internal/music/parsers/ytdlp"
	"groovebox/internal/music/sources"
	"groovebox/internal/music/track"
)

// Registry maps a mode name to the streamer behind it. A mode is a streamer
// plus a delivery style, link or pipe.
var Registry = map[string]parsers.Streamer{
	"ytdlp-link":  &ytdlp.Streamer{},
	"ytdlp-pipe":  &ytdlp.Streamer{},
	"kkdai-link":  &kkdai.Streamer{},
	"kkdai-pipe":  &kkdai.Streamer{},
	"ffmpeg-link": &ffmpeg.Streamer{},
}

func isPipeMode(mode string) bool {
	return mode == "ytdlp-pipe" || mode == "kkdai-pipe"
}

// ChainFor returns the ordered streamer modes to try for a source.
func ChainFor(source string) []string {
	switch source {
	case sources.SourceYouTube:
		return []string{"ytdlp-link", "ytdlp-pipe", "kkdai-link", "kkdai-pipe"}
	case sources.SourceSoundCloud:
		return []string{"ytdlp-pipe", "ytdlp-link"}
	case sources.SourceDirect:
		return []string{"ffmpeg-link"}
	}
	return []string{"ytdlp-link", "ffmpeg-link"}
}

// TrackStream is an open PCM stream with the mode that produced it.
type TrackStream struct {
	io.ReadCloser
	Track *track.Track
	Mode  string
}

// Open starts a PCM stream for the track using a specific mode.
func Open(t *track.Track, mode string, seek time.Duration) (*TrackStream, func(), error) {
	streamer, ok := Registry[mode]
	if !ok {
		return nil, nil, fmt.Errorf("unknown streamer mode: %s", mode)
	}

	var (
		r       io.ReadCloser
		cleanup func()
		err     error
	)
	if isPipeMode(mode) && streamer.SupportsPipe() {
		r, cleanup, err = streamer.PipeStream(t, seek)
	} else {
		r, cleanup, err = streamer.LinkStream(t, seek)
	}
	if err != nil {
		return nil, nil, err
	}

	return &TrackStream{ReadCloser: r, Track: t, Mode: mode}, cleanup, nil
}

// OpenAuto walks the track's streamer chain until one opens.
func OpenAuto(t *track.Track, seek time.Duration) (*TrackStream, func(), error) {
	var errs []error
	for _, mode := range ChainFor(t.Source) {
		ts, cleanup, err := Open(t, mode, seek)
		if err == nil {
			return ts, cleanup, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", mode, err))
		log.Printf("[WARN] streamer %s failed for %q: %v, trying next", mode, t.DisplayTitle(), err)
	}

	msg := ""
	for _, e := range errs {
		msg += e.Error() + "; "
	}
	return nil, nil, fmt.Errorf("all streamers failed for %q: %s", t.DisplayTitle(), msg)
}
