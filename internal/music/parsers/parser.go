// Package parsers turns a resolved track into a raw PCM audio stream.
// Every streamer emits signed 16-bit little-endian PCM at the rate Discord
// voice expects, ready for opus encoding.
package parsers

import (
	"io"
	"time"

	"groovebox/internal/music/track"
)

const (
	Channels   = 2
	SampleRate = 48000
	FrameSize  = 960 // 20ms at 48kHz
)

// Streamer produces a PCM stream for a track, either by resolving a direct
// media link first or by piping the download straight into the decoder.
// The returned func kills the underlying processes; callers must invoke it
// once the stream is drained or abandoned.
type Streamer interface {
	Name() string
	LinkStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error)
	PipeStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error)
	SupportsPipe() bool
}
