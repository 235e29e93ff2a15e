package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"groovebox/internal/music/parsers"
	"groovebox/internal/music/queue"
	"groovebox/internal/music/track"
	"groovebox/internal/storage"
)

const frameBytes = parsers.FrameSize * parsers.Channels * 2

type fakeVoiceConn struct {
	ch        chan []byte
	channelID string
}

func (f *fakeVoiceConn) Speaking(bool) error     { return nil }
func (f *fakeVoiceConn) OpusSend() chan<- []byte { return f.ch }
func (f *fakeVoiceConn) ChannelID() string       { return f.channelID }
func (f *fakeVoiceConn) Disconnect() error       { return nil }

type fakeVoice struct{}

func (f *fakeVoice) Join(guildID, channelID string) (VoiceConn, error) {
	conn := &fakeVoiceConn{ch: make(chan []byte, 64), channelID: channelID}
	go func() {
		for range conn.ch {
		}
	}()
	return conn, nil
}

// endlessReader yields silence forever, for tracks that must outlive the test
// until explicitly stopped.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// fakeOpener records every open call and serves canned PCM per track title.
type fakeOpener struct {
	mu      sync.Mutex
	opens   []string
	seeks   []time.Duration
	endless map[string]bool // titles that stream forever
	frames  int             // frames served for finite tracks
}

func (f *fakeOpener) open(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	f.mu.Lock()
	f.opens = append(f.opens, t.Title)
	f.seeks = append(f.seeks, seek)
	endless := f.endless[t.Title]
	frames := f.frames
	f.mu.Unlock()

	if endless {
		return io.NopCloser(endlessReader{}), func() {}, nil
	}
	if frames == 0 {
		frames = 2
	}
	return io.NopCloser(bytes.NewReader(make([]byte, frames*frameBytes))), func() {}, nil
}

func (f *fakeOpener) opened() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.opens...)
}

func newTestPlayer(t *testing.T, opener *fakeOpener) (*Player, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	p := New(Options{
		GuildID:       "guild-1",
		Store:         store,
		Voice:         &fakeVoice{},
		Opener:        opener.open,
		MaxQueueSize:  50,
		DefaultVolume: 100,
	})
	t.Cleanup(p.Close)
	return p, store
}

func waitStatus(t *testing.T, p *Player, want Status) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-p.Status:
			if s == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for status %q", want)
		}
	}
}

func waitState(t *testing.T, p *Player, want State) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if p.State() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("state = %q, want %q", p.State(), want)
}

func mkTracks(titles ...string) []track.Track {
	ts := make([]track.Track, len(titles))
	for i, title := range titles {
		ts[i] = track.Track{Title: title, URL: "https://example.com/" + title, Duration: time.Hour}
	}
	return ts
}

func TestPlaysQueueToCompletion(t *testing.T) {
	opener := &fakeOpener{}
	p, _ := newTestPlayer(t, opener)

	if _, err := p.EnqueueTracks(mkTracks("a", "b"), "u1", "user"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := p.EnsurePlaying("vc-1"); err != nil {
		t.Fatalf("ensure playing: %v", err)
	}

	waitStatus(t, p, StatusQueueEnded)
	waitState(t, p, StateIdle)

	got := opener.opened()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("opened tracks = %v, want [a b]", got)
	}
}

func TestEnsurePlayingRequiresQueueAndChannel(t *testing.T) {
	p, _ := newTestPlayer(t, &fakeOpener{})

	if err := p.EnsurePlaying(""); !errors.Is(err, ErrNoVoice) {
		t.Fatalf("err = %v, want ErrNoVoice", err)
	}
	if err := p.EnsurePlaying("vc-1"); !errors.Is(err, ErrEmptyQueue) {
		t.Fatalf("err = %v, want ErrEmptyQueue", err)
	}
}

func TestSkipAdvances(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	p.EnqueueTracks(mkTracks("a", "b"), "u1", "user")
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)

	if err := p.Skip(); err != nil {
		t.Fatalf("skip: %v", err)
	}
	waitStatus(t, p, StatusQueueEnded)

	got := opener.opened()
	if len(got) != 2 || got[1] != "b" {
		t.Fatalf("opened tracks = %v, want [a b]", got)
	}
}

func TestSkipIgnoresLoopOne(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	p.EnqueueTracks(mkTracks("a", "b"), "u1", "user")
	p.SetLoop(queue.LoopOne)
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)

	p.Skip()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if got := opener.opened(); len(got) >= 2 {
			if got[1] != "b" {
				t.Fatalf("skip under loop-one opened %q, want b", got[1])
			}
			if p.Loop() != queue.LoopOne {
				t.Fatalf("loop mode = %q, want one", p.Loop())
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("second track never opened")
}

func TestPauseResume(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	p.EnqueueTracks(mkTracks("a"), "u1", "user")
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)
	waitState(t, p, StatePlaying)

	if err := p.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if p.State() != StatePaused {
		t.Fatalf("state = %q, want paused", p.State())
	}
	if err := p.Pause(); err == nil {
		t.Fatal("double pause should fail")
	}

	if err := p.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if p.State() != StatePlaying {
		t.Fatalf("state = %q, want playing", p.State())
	}
}

func TestStopKeepsQueue(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	p.EnqueueTracks(mkTracks("a", "b", "c"), "u1", "user")
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)

	if err := p.StopPlayback(false); err != nil {
		t.Fatalf("stop: %v", err)
	}
	waitState(t, p, StateIdle)

	if n := p.QueueSize(); n != 3 {
		t.Fatalf("queue size after stop = %d, want 3", n)
	}
}

func TestSeekReopensAtOffset(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	p.EnqueueTracks(mkTracks("a"), "u1", "user")
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)

	if err := p.Seek(42 * time.Second); err != nil {
		t.Fatalf("seek: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		opener.mu.Lock()
		n := len(opener.seeks)
		var last time.Duration
		if n > 0 {
			last = opener.seeks[n-1]
		}
		opener.mu.Unlock()
		if n >= 2 {
			if last != 42*time.Second {
				t.Fatalf("reopen seek = %s, want 42s", last)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("stream never reopened after seek")
}

func TestSeekPastEndRejected(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	tracks := mkTracks("a")
	tracks[0].Duration = time.Minute
	p.EnqueueTracks(tracks, "u1", "user")
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)

	if err := p.Seek(2 * time.Minute); err == nil {
		t.Fatal("seek past track end should fail")
	}
}

func TestVolumePersistsAndValidates(t *testing.T) {
	p, store := newTestPlayer(t, &fakeOpener{})

	if err := p.SetVolume(250); !errors.Is(err, ErrVolumeRange) {
		t.Fatalf("err = %v, want ErrVolumeRange", err)
	}
	if err := p.SetVolume(150); err != nil {
		t.Fatalf("set volume: %v", err)
	}

	s, err := store.LoadSettings(context.Background(), "guild-1")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.Volume != 150 {
		t.Fatalf("persisted volume = %d, want 150", s.Volume)
	}
}

func TestQueuePersistsAcrossPlayers(t *testing.T) {
	store := storage.NewMemory()
	opts := Options{
		GuildID:       "guild-1",
		Store:         store,
		Voice:         &fakeVoice{},
		Opener:        (&fakeOpener{}).open,
		MaxQueueSize:  50,
		DefaultVolume: 100,
	}

	p1 := New(opts)
	p1.EnqueueTracks(mkTracks("a", "b"), "u1", "user")
	p1.Close()

	p2 := New(opts)
	defer p2.Close()
	if err := p2.RestoreQueue(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	tracks := p2.Tracks()
	if len(tracks) != 2 || tracks[0].Title != "a" {
		t.Fatalf("restored tracks = %v", tracks)
	}
}

func TestRemovePlayingTrackRejected(t *testing.T) {
	opener := &fakeOpener{endless: map[string]bool{"a": true}}
	p, _ := newTestPlayer(t, opener)

	p.EnqueueTracks(mkTracks("a", "b"), "u1", "user")
	p.EnsurePlaying("vc-1")
	waitStatus(t, p, StatusPlaying)
	waitState(t, p, StatePlaying)

	if _, err := p.Remove(0); err == nil {
		t.Fatal("removing the playing track should fail")
	}
	if _, err := p.Remove(1); err != nil {
		t.Fatalf("removing an upcoming track failed: %v", err)
	}
}
