package stream

import (
	"errors"
	"io"
	"log"
	"time"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/track"
)

const maxRecoveryAttempts = 3

// RecoveryStream wraps a TrackStream and reopens it at the current position
// when the source cuts out early. Expiring media links and flaky CDNs make
// this a routine event, not an edge case.
type RecoveryStream struct {
	track   *track.Track
	stream  *TrackStream
	cleanup func()
	pos     time.Duration
	retries map[string]int // mode to failed attempts
}

func NewRecoveryStream(t *track.Track) *RecoveryStream {
	return &RecoveryStream{
		track:   t,
		retries: make(map[string]int),
	}
}

// Open starts the stream at the given position, walking the streamer chain
// past modes that have already burned their attempts.
func (rs *RecoveryStream) Open(seek time.Duration) error {
	for _, mode := range ChainFor(rs.track.Source) {
		if rs.retries[mode] >= maxRecoveryAttempts {
			continue
		}

		ts, cleanup, err := Open(rs.track, mode, seek)
		if err != nil {
			log.Printf("[WARN] streamer %s failed to open %q: %v", mode, rs.track.DisplayTitle(), err)
			rs.retries[mode]++
			continue
		}

		rs.stream = ts
		rs.cleanup = cleanup
		rs.pos = seek
		return nil
	}
	return errors.New("all streamers failed or exceeded recovery attempts")
}

// Position returns the current playback position, derived from bytes read.
func (rs *RecoveryStream) Position() time.Duration { return rs.pos }

func (rs *RecoveryStream) Read(p []byte) (int, error) {
	if rs.stream == nil {
		return 0, errors.New("stream not opened")
	}

	n, err := rs.stream.Read(p)
	rs.pos += pcmDuration(n)

	if err == io.EOF && rs.pos+time.Second < rs.track.Duration {
		// track is not close to its known end, treat as a dropped stream
		return rs.recover(p)
	}
	return n, err
}

func (rs *RecoveryStream) recover(p []byte) (int, error) {
	mode := rs.stream.Mode
	if rs.retries[mode] >= maxRecoveryAttempts {
		return 0, io.EOF
	}
	rs.retries[mode]++
	log.Printf("[WARN] stream for %q dropped at %s, reopening (attempt %d)",
		rs.track.DisplayTitle(), rs.pos, rs.retries[mode])

	if rs.cleanup != nil {
		rs.cleanup()
	}
	if err := rs.Open(rs.pos); err != nil {
		log.Printf("[ERR] stream recovery failed: %v", err)
		return 0, io.EOF
	}
	return rs.Read(p)
}

func (rs *RecoveryStream) Close() error {
	if rs.cleanup != nil {
		rs.cleanup()
	}
	if rs.stream != nil {
		return rs.stream.Close()
	}
	return nil
}

// pcmDuration converts a byte count of s16le PCM into wall time.
func pcmDuration(n int) time.Duration {
	const bytesPerSecond = parsers.SampleRate * parsers.Channels * 2
	return time.Duration(n) * time.Second / bytesPerSecond
}
