// Package ffmpeg decodes a direct media URL straight to PCM. It handles
// internet radio streams and plain audio file links where no extraction
// step is needed.
package ffmpeg

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/track"
)

type Streamer struct{}

func (s *Streamer) Name() string { return "ffmpeg" }

func (s *Streamer) LinkStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	url := t.StreamURL
	if url == "" {
		url = t.URL
	}

	args := []string{
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
	}
	if seek > 0 {
		args = append(args, "-ss", fmt.Sprintf("%.3f", seek.Seconds()))
	}
	args = append(args,
		"-i", url,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", parsers.SampleRate),
		"-ac", fmt.Sprintf("%d", parsers.Channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	cmd := exec.Command("ffmpeg", args...)
	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("ffmpeg stdout pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
	}
	return reader, cleanup, nil
}

func (s *Streamer) PipeStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	return nil, nil, errors.New("pipe streaming not supported")
}

func (s *Streamer) SupportsPipe() bool { return false }
