package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"layeh.com/gopus"

	"groovebox/internal/music/parsers"
)

// Options controls a PCM playback loop. All callbacks may be nil.
type Options struct {
	Stop   <-chan struct{}     // closing aborts playback
	Paused func() bool         // polled each frame
	Volume func() int          // percent, 0 to 200
	Tick   func(time.Duration) // called with the elapsed audio per frame
}

// ErrStopped reports that playback was aborted through Options.Stop.
var ErrStopped = errors.New("playback stopped")

// PlayPCM reads s16le PCM frames from src, applies volume, encodes to opus
// and pushes the frames into send. Returns nil on a clean end of stream.
func PlayPCM(src io.Reader, send chan<- []byte, opts Options) error {
	encoder, err := gopus.NewEncoder(parsers.SampleRate, parsers.Channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("opus encoder error: %w", err)
	}

	const frameDuration = 20 * time.Millisecond

	pcmBuf := make([]byte, parsers.FrameSize*parsers.Channels*2)
	intBuf := make([]int16, parsers.FrameSize*parsers.Channels)

	for {
		select {
		case <-opts.Stop:
			return ErrStopped
		default:
		}

		if opts.Paused != nil && opts.Paused() {
			select {
			case <-opts.Stop:
				return ErrStopped
			case <-time.After(frameDuration):
			}
			continue
		}

		if _, err := io.ReadFull(src, pcmBuf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return fmt.Errorf("pcm read error: %w", err)
		}

		for i := range intBuf {
			intBuf[i] = int16(binary.LittleEndian.Uint16(pcmBuf[i*2 : i*2+2]))
		}
		if opts.Volume != nil {
			ScaleVolume(intBuf, opts.Volume())
		}

		opus, err := encoder.Encode(intBuf, parsers.FrameSize, len(pcmBuf))
		if err != nil {
			return fmt.Errorf("opus encode error: %w", err)
		}

		select {
		case <-opts.Stop:
			return ErrStopped
		case send <- opus:
		}

		if opts.Tick != nil {
			opts.Tick(frameDuration)
		}
	}
}

// ScaleVolume scales PCM samples in place by a percentage, clamping to the
// int16 range. 100 is unity gain.
func ScaleVolume(samples []int16, percent int) {
	if percent == 100 {
		return
	}
	if percent < 0 {
		percent = 0
	}
	for i, s := range samples {
		v := int32(s) * int32(percent) / 100
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		samples[i] = int16(v)
	}
}
