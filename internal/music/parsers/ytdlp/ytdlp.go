// Package ytdlp shells out to yt-dlp for metadata and media extraction,
// decoding through ffmpeg to PCM. It is the most capable streamer and the
// first one tried for every source.
package ytdlp

import (
	"io"
	"time"

	"groovebox/internal/music/track"
)

type Streamer struct{}

func (s *Streamer) Name() string { return "ytdlp" }

func (s *Streamer) LinkStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	return linkStream(t, seek)
}

func (s *Streamer) PipeStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	return pipeStream(t, seek)
}

func (s *Streamer) SupportsPipe() bool { return true }
