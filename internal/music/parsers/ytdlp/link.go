package ytdlp

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/track"
)

func linkStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	info, err := probe(t.URL)
	if err != nil {
		return nil, nil, err
	}
	link, err := info.streamLink()
	if err != nil {
		return nil, nil, err
	}
	info.apply(t)
	t.StreamURL = link

	ffmpeg := exec.Command("ffmpeg",
		"-ss", fmt.Sprintf("%.3f", seek.Seconds()),
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
		"-i", link,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", parsers.SampleRate),
		"-ac", fmt.Sprintf("%d", parsers.Channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	reader, err := ffmpeg.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("ffmpeg stdout pipe error: %w", err)
	}
	if err := ffmpeg.Start(); err != nil {
		return nil, nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	cleanup := func() {
		ffmpeg.Process.Kill()
	}
	return reader, cleanup, nil
}
