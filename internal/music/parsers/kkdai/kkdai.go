// Package kkdai streams YouTube audio through the kkdai/youtube client,
// avoiding the yt-dlp binary entirely. Used as a fallback when yt-dlp is
// missing or fails on a video.
package kkdai

import (
	"io"
	"time"

	"groovebox/internal/music/track"
)

type Streamer struct{}

func (s *Streamer) Name() string { return "kkdai" }

func (s *Streamer) LinkStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	return linkStream(t, seek)
}

func (s *Streamer) PipeStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	return pipeStream(t, seek)
}

func (s *Streamer) SupportsPipe() bool { return true }
