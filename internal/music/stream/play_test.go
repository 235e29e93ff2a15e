package stream

import (
	"testing"
	"time"
)

func TestScaleVolumeUnity(t *testing.T) {
	samples := []int16{-1000, 0, 1000, 32767, -32768}
	want := []int16{-1000, 0, 1000, 32767, -32768}
	ScaleVolume(samples, 100)
	for i := range samples {
		if samples[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestScaleVolumeHalf(t *testing.T) {
	samples := []int16{-1000, 0, 1000}
	ScaleVolume(samples, 50)
	want := []int16{-500, 0, 500}
	for i := range samples {
		if samples[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestScaleVolumeClamps(t *testing.T) {
	samples := []int16{32767, -32768}
	ScaleVolume(samples, 200)
	if samples[0] != 32767 {
		t.Fatalf("positive clamp = %d, want 32767", samples[0])
	}
	if samples[1] != -32768 {
		t.Fatalf("negative clamp = %d, want -32768", samples[1])
	}
}

func TestScaleVolumeMute(t *testing.T) {
	samples := []int16{123, -456, 789}
	ScaleVolume(samples, 0)
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestPCMDuration(t *testing.T) {
	// one second of 48kHz stereo s16le
	if got := pcmDuration(48000 * 2 * 2); got != time.Second {
		t.Fatalf("pcmDuration = %s, want 1s", got)
	}
	if got := pcmDuration(0); got != 0 {
		t.Fatalf("pcmDuration(0) = %s, want 0", got)
	}
}

func TestChainForKnownSources(t *testing.T) {
	tests := []struct {
		source string
		first  string
	}{
		{"youtube", "ytdlp-link"},
		{"soundcloud", "ytdlp-pipe"},
		{"direct", "ffmpeg-link"},
		{"", "ytdlp-link"},
	}
	for _, tt := range tests {
		chain := ChainFor(tt.source)
		if len(chain) == 0 {
			t.Fatalf("ChainFor(%q) is empty", tt.source)
		}
		if chain[0] != tt.first {
			t.Errorf("ChainFor(%q)[0] = %q, want %q", tt.source, chain[0], tt.first)
		}
		for _, mode := range chain {
			if _, ok := Registry[mode]; !ok {
				t.Errorf("ChainFor(%q) names unregistered mode %q", tt.source, mode)
			}
		}
	}
}
