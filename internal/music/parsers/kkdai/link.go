package kkdai

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/kkdai/youtube/v2"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/track"
)

func linkStream(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	id, err := videoID(t.URL)
	if err != nil {
		return nil, nil, err
	}

	client := &youtube.Client{}
	video, err := client.GetVideo(id)
	if err != nil {
		return nil, nil, fmt.Errorf("youtube client error: %w", err)
	}

	t.Duration = video.Duration
	if t.Title == "" {
		t.Title = video.Title
	}

	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return nil, nil, errors.New("no audio formats found for video")
	}

	link, err := client.GetStreamURL(video, &formats[0])
	if err != nil {
		return nil, nil, fmt.Errorf("get stream URL error: %w", err)
	}
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
