package ytdlp

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/track"
)

func pipeStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	info, err := probe(t.URL)
	if err != nil {
		return nil, nil, err
	}
	info.apply(t)

	ytdlp := exec.Command("yt-dlp", "-o", "-", "-f", "bestaudio", t.URL)
	ffmpeg := exec.Command("ffmpeg",
		"-ss", fmt.Sprintf("%.3f", seek.Seconds()),
		"-i", "pipe:0",
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", parsers.SampleRate),
		"-ac", fmt.Sprintf("%d", parsers.Channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	ffmpegIn, err := ytdlp.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("yt-dlp stdout pipe error: %w", err)
	}
	ffmpeg.Stdin = ffmpegIn

	reader, err := ffmpeg.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("ffmpeg stdout pipe error: %w", err)
	}

	if err := ytdlp.Start(); err != nil {
		return nil, nil, fmt.Errorf("yt-dlp start error: %w", err)
	}
	if err := ffmpeg.Start(); err != nil {
		ytdlp.Process.Kill()
		return nil, nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	cleanup := func() {
		ffmpeg.Process.Kill()
		ytdlp.Process.Kill()
	}
	return reader, cleanup, nil
}
