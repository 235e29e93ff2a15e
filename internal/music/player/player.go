// Package player runs per-guild playback: one state machine over the queue,
// one playback goroutine, and a watchdog that leaves voice after idling.
package player

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"groovebox/internal/music/queue"
	"groovebox/internal/music/source_resolver"
	"groovebox/internal/music/stream"
	"groovebox/internal/music/track"
	"groovebox/internal/storage"
)

// State is the lifecycle of a guild's playback.
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StatePlaying    State = "playing"
	StatePaused     State = "paused"
)

// Status events are emitted on the player's Status channel for the gateway
// layer to surface in chat.
type Status string

const (
	StatusPlaying    Status = "Playing"
	StatusAdded      Status = "Track(s) Added"
	StatusStopped    Status = "Playback Stopped"
	StatusPaused     Status = "Playback Paused"
	StatusResumed    Status = "Playback Resumed"
	StatusQueueEnded Status = "Queue Ended"
	StatusError      Status = "Error"
)

var (
	ErrNotPlaying    = errors.New("no track is currently playing")
	ErrEmptyQueue    = errors.New("no tracks in queue")
	ErrQueueFull     = errors.New("queue is full")
	ErrNoVoice       = errors.New("no voice channel set")
	ErrVolumeRange   = errors.New("volume must be between 0 and 200")
	ErrBadTrackIndex = errors.New("track index out of range")
)

// VoiceConn is the slice of a Discord voice connection the player needs.
// The discord layer wraps the real one; tests use fakes.
type VoiceConn interface {
	Speaking(bool) error
	OpusSend() chan<- []byte
	ChannelID() string
	Disconnect() error
}

// Voice joins voice channels on behalf of the player.
type Voice interface {
	Join(guildID, channelID string) (VoiceConn, error)
}

// Opener opens a PCM stream for a track at an offset. The default uses the
// stream package's recovery chain.
type Opener func(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error)

func defaultOpener(t *track.Track, seek time.Duration) (io.ReadCloser, func(), error) {
	rs := stream.NewRecoveryStream(t)
	if err := rs.Open(seek); err != nil {
		return nil, nil, err
	}
	return rs, func() {}, nil
}

// why a track's playback loop ended
type stopReason int

const (
	reasonNatural stopReason = iota
	reasonStop
	reasonSkip
	reasonPrevious
	reasonJump
	reasonSeek
)

// Player owns one guild's queue and playback. All methods are safe for
// concurrent use.
type Player struct {
	mu sync.Mutex

	guildID   string
	channelID string

	state    State
	queue    *queue.Queue
	volume   int
	paused   bool
	position time.Duration

	resolver *source_resolver.Resolver
	store    storage.Store
	voice    Voice
	open     Opener

	vc VoiceConn

	// per-track playback control, recreated each iteration
	stopCh    chan struct{}
	reason    stopReason
	jumpIndex int
	seekTo    time.Duration

	loopRunning bool
	lastActive  time.Time
	inactivity  time.Duration
	quit        chan struct{}
	quitOnce    sync.Once

	Status chan Status
}

// Options configures a new Player.
type Options struct {
	GuildID       string
	Store         storage.Store
	Resolver      *source_resolver.Resolver
	Voice         Voice
	Opener        Opener // nil means the stream package default
	MaxQueueSize  int
	DefaultVolume int
	Inactivity    time.Duration // zero disables the watchdog
}

func New(opts Options) *Player {
	p := &Player{
		guildID:    opts.GuildID,
		state:      StateIdle,
		queue:      queue.New(opts.MaxQueueSize),
		volume:     opts.DefaultVolume,
		resolver:   opts.Resolver,
		store:      opts.Store,
		voice:      opts.Voice,
		open:       opts.Opener,
		inactivity: opts.Inactivity,
		lastActive: time.Now(),
		quit:       make(chan struct{}),
		Status:     make(chan Status, 10), // buffered to reduce drops
	}
	if p.open == nil {
		p.open = defaultOpener
	}
	if p.volume <= 0 {
		p.volume = 100
	}

	if s, err := p.store.LoadSettings(context.Background(), p.guildID); err == nil && s.Volume > 0 {
		p.volume = s.Volume
	}

	if p.inactivity > 0 {
		go p.watchdog()
	}
	return p
}

// Close releases the watchdog and disconnects from voice.
func (p *Player) Close() {
	p.quitOnce.Do(func() { close(p.quit) })
	p.StopPlayback(true)
}

func (p *Player) GuildID() string { return p.guildID }

// Done is closed when the player shuts down. Status listeners select on it.
func (p *Player) Done() <-chan struct{} { return p.quit }

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Enqueue resolves input and appends the results. Returns the resolved
// tracks even when only part of them fit.
func (p *Player) Enqueue(input, source string, requesterID, requesterName string) ([]track.Track, error) {
	tracks, err := p.resolver.Resolve(input, source)
	if err != nil {
		p.emit(StatusError)
		return nil, err
	}
	return p.EnqueueTracks(tracks, requesterID, requesterName)
}

// EnqueueTracks appends already resolved tracks, stamping the requester.
func (p *Player) EnqueueTracks(tracks []track.Track, requesterID, requesterName string) ([]track.Track, error) {
	now := time.Now()
	for i := range tracks {
		tracks[i].RequesterID = requesterID
		tracks[i].RequesterName = requesterName
		tracks[i].AddedAt = now
	}

	p.mu.Lock()
	added := p.queue.AddAll(tracks)
	playing := p.state == StatePlaying || p.state == StatePaused
	p.touchLocked()
	p.mu.Unlock()

	if added == 0 {
		return nil, ErrQueueFull
	}
	if playing {
		p.emit(StatusAdded)
	}
	p.persist()
	return tracks[:added], nil
}

// EnsurePlaying starts the playback loop on the given voice channel if it
// is not already running.
func (p *Player) EnsurePlaying(channelID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if channelID != "" {
		p.channelID = channelID
	}
	if p.channelID == "" {
		return ErrNoVoice
	}
	if p.queue.IsEmpty() {
		return ErrEmptyQueue
	}
	if p.loopRunning {
		return nil
	}

	p.loopRunning = true
	p.state = StateConnecting
	p.touchLocked()
	go p.run()
	return nil
}

// run is the playback loop. It owns state transitions between tracks and
// exits when the queue is exhausted or playback is stopped.
func (p *Player) run() {
	defer func() {
		p.mu.Lock()
		p.loopRunning = false
		p.state = StateIdle
		p.paused = false
		p.position = 0
		p.touchLocked()
		p.mu.Unlock()
		p.persist()
	}()

	for {
		p.mu.Lock()
		cur := p.queue.Current()
		if cur == nil {
			p.mu.Unlock()
			p.emit(StatusQueueEnded)
			return
		}
		seek := p.seekTo
		p.seekTo = 0
		stop := make(chan struct{})
		p.stopCh = stop
		p.reason = reasonNatural
		p.mu.Unlock()

		err := p.playTrack(cur, seek, stop)

		p.mu.Lock()
		reason := p.reason
		p.stopCh = nil
		p.position = 0
		jump := p.jumpIndex
		p.mu.Unlock()

		if err != nil && !errors.Is(err, stream.ErrStopped) {
			log.Printf("[ERR] playback of %q failed: %v", cur.DisplayTitle(), err)
			p.emit(StatusError)
			if reason == reasonNatural {
				reason = reasonSkip // do not retry a broken track forever
			}
		}

		p.mu.Lock()
		var next *track.Track
		switch reason {
		case reasonStop:
			p.mu.Unlock()
			p.emit(StatusStopped)
			return
		case reasonNatural:
			next = p.queue.Advance()
		case reasonSkip:
			next = p.advanceSkippingLocked()
		case reasonPrevious:
			if next = p.queue.Previous(); next == nil {
				next = p.queue.Current() // restart from the top of the track
			}
		case reasonJump:
			next = p.queue.Jump(jump)
		case reasonSeek:
			next = p.queue.Current()
		}
		p.mu.Unlock()
		p.persist()

		if next == nil {
			p.emit(StatusQueueEnded)
			return
		}
	}
}

// advanceSkippingLocked moves forward even in loop-one mode, which only
// repeats on natural track end.
func (p *Player) advanceSkippingLocked() *track.Track {
	if p.queue.Loop() == queue.LoopOne {
		p.queue.SetLoop(queue.LoopOff)
		defer p.queue.SetLoop(queue.LoopOne)
	}
	return p.queue.Advance()
}

// playTrack connects to voice, opens the stream and pushes frames until the
// track ends or stop closes.
func (p *Player) playTrack(t *track.Track, seek time.Duration, stop chan struct{}) error {
	vc, err := p.ensureVoice()
	if err != nil {
		return err
	}

	src, cleanup, err := p.open(t, seek)
	if err != nil {
		return err
	}
	defer cleanup()
	defer src.Close()

	p.mu.Lock()
	p.state = StatePlaying
	p.position = seek
	p.touchLocked()
	p.mu.Unlock()

	if seek == 0 {
		p.emit(StatusPlaying)
	}

	vc.Speaking(true)
	defer vc.Speaking(false)

	return stream.PlayPCM(src, vc.OpusSend(), stream.Options{
		Stop: stop,
		Paused: func() bool {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.paused
		},
		Volume: func() int {
			p.mu.Lock()
			defer p.mu.Unlock()
			return p.volume
		},
		Tick: func(d time.Duration) {
			p.mu.Lock()
			p.position += d
			p.lastActive = time.Now()
			p.mu.Unlock()
		},
	})
}

func (p *Player) ensureVoice() (VoiceConn, error) {
	p.mu.Lock()
	vc := p.vc
	channelID := p.channelID
	p.mu.Unlock()

	if channelID == "" {
		return nil, ErrNoVoice
	}
	if vc != nil && vc.ChannelID() == channelID {
		return vc, nil
	}
	if vc != nil {
		vc.Disconnect()
	}

	p.mu.Lock()
	p.state = StateConnecting
	p.mu.Unlock()

	vc, err := p.voice.Join(p.guildID, channelID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.vc = vc
	p.mu.Unlock()
	return vc, nil
}

// interrupt asks the playback loop to end the current track for a reason.
func (p *Player) interrupt(reason stopReason) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopCh == nil {
		return ErrNotPlaying
	}
	p.reason = reason
	p.paused = false
	close(p.stopCh)
	p.stopCh = nil
	p.touchLocked()
	return nil
}

// Skip ends the current track and moves to the next one.
func (p *Player) Skip() error { return p.interrupt(reasonSkip) }

// Previous moves back to the prior track, or restarts the current one.
func (p *Player) Previous() error { return p.interrupt(reasonPrevious) }

// Jump plays the queue entry at index.
func (p *Player) Jump(index int) error {
	p.mu.Lock()
	if index < 0 || index >= p.queue.Size() {
		p.mu.Unlock()
		return ErrBadTrackIndex
	}
	p.jumpIndex = index
	p.mu.Unlock()
	return p.interrupt(reasonJump)
}

// Seek restarts the current track at the given position.
func (p *Player) Seek(pos time.Duration) error {
	if pos < 0 {
		pos = 0
	}
	p.mu.Lock()
	cur := p.queue.Current()
	if cur == nil || p.stopCh == nil {
		p.mu.Unlock()
		return ErrNotPlaying
	}
	if cur.Duration > 0 && pos >= cur.Duration {
		p.mu.Unlock()
		return errors.New("seek position is past the end of the track")
	}
	p.seekTo = pos
	p.mu.Unlock()
	return p.interrupt(reasonSeek)
}

// StopPlayback halts the loop. With leaveVoice it also disconnects and
// clears the channel binding; the queue is kept either way.
func (p *Player) StopPlayback(leaveVoice bool) error {
	err := p.interrupt(reasonStop)

	if leaveVoice {
		p.mu.Lock()
		vc := p.vc
		p.vc = nil
		p.channelID = ""
		p.mu.Unlock()
		if vc != nil {
			vc.Disconnect()
		}
	}
	return err
}

// Pause suspends frame delivery without tearing the stream down.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StatePlaying {
		return ErrNotPlaying
	}
	p.paused = true
	p.state = StatePaused
	p.touchLocked()
	p.emit(StatusPaused)
	return nil
}

// Resume continues a paused track.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StatePaused {
		return ErrNotPlaying
	}
	p.paused = false
	p.state = StatePlaying
	p.touchLocked()
	p.emit(StatusResumed)
	return nil
}

// NowPlaying returns the current track and position, or ErrNotPlaying.
func (p *Player) NowPlaying() (*track.Track, time.Duration, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StatePlaying && p.state != StatePaused {
		return nil, 0, ErrNotPlaying
	}
	cur := p.queue.Current()
	if cur == nil {
		return nil, 0, ErrNotPlaying
	}
	return cur, p.position, nil
}

// Queue view helpers, all returning copies.

func (p *Player) Tracks() []track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Tracks()
}

func (p *Player) CurrentIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.CurrentIndex()
}

func (p *Player) History() []track.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.History()
}

func (p *Player) QueueSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Size()
}

// Queue mutations.

func (p *Player) Shuffle() {
	p.mu.Lock()
	p.queue.Shuffle()
	p.touchLocked()
	p.mu.Unlock()
	p.persist()
}

func (p *Player) Remove(index int) (*track.Track, error) {
	p.mu.Lock()
	if index == p.queue.CurrentIndex() && (p.state == StatePlaying || p.state == StatePaused) {
		p.mu.Unlock()
		return nil, errors.New("cannot remove the playing track, skip it instead")
	}
	t := p.queue.Remove(index)
	p.touchLocked()
	p.mu.Unlock()
	if t == nil {
		return nil, ErrBadTrackIndex
	}
	p.persist()
	return t, nil
}

func (p *Player) Move(from, to int) error {
	p.mu.Lock()
	ok := p.queue.Move(from, to)
	p.touchLocked()
	p.mu.Unlock()
	if !ok {
		return ErrBadTrackIndex
	}
	p.persist()
	return nil
}

// ClearUpcoming drops everything after the current track.
func (p *Player) ClearUpcoming() int {
	p.mu.Lock()
	n := p.queue.ClearUpcoming()
	p.touchLocked()
	p.mu.Unlock()
	p.persist()
	return n
}

// Clear stops playback and empties the queue.
func (p *Player) Clear() {
	p.interrupt(reasonStop)
	p.mu.Lock()
	p.queue.Clear()
	p.touchLocked()
	p.mu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.store.ClearQueue(ctx, p.guildID); err != nil {
		log.Printf("[WARN] clear queue persist failed for guild %s: %v", p.guildID, err)
	}
}

func (p *Player) Loop() queue.LoopMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Loop()
}

func (p *Player) SetLoop(mode queue.LoopMode) {
	p.mu.Lock()
	p.queue.SetLoop(mode)
	p.touchLocked()
	p.mu.Unlock()
	p.persist()
}

func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume applies immediately to the live stream and persists.
func (p *Player) SetVolume(percent int) error {
	if percent < 0 || percent > 200 {
		return ErrVolumeRange
	}
	p.mu.Lock()
	p.volume = percent
	p.touchLocked()
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.store.SaveSettings(ctx, p.guildID, storage.Settings{Volume: percent}); err != nil {
		log.Printf("[WARN] volume persist failed for guild %s: %v", p.guildID, err)
	}
	return nil
}

// Join binds the player to a voice channel without starting playback.
func (p *Player) Join(channelID string) error {
	p.mu.Lock()
	p.channelID = channelID
	p.touchLocked()
	p.mu.Unlock()
	_, err := p.ensureVoice()
	if err == nil {
		p.mu.Lock()
		if p.state == StateConnecting {
			p.state = StateIdle
		}
		p.mu.Unlock()
	}
	return err
}

// ChannelID returns the bound voice channel, empty when disconnected.
func (p *Player) ChannelID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channelID
}

// RestoreQueue loads the persisted snapshot, if any. Playback is not
// resumed automatically.
func (p *Player) RestoreQueue(ctx context.Context) error {
	snap, err := p.store.LoadQueue(ctx, p.guildID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.queue.Restore(snap)
	p.mu.Unlock()
	return nil
}

// persist saves the queue snapshot, best effort.
func (p *Player) persist() {
	p.mu.Lock()
	snap := p.queue.Snapshot()
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.store.SaveQueue(ctx, p.guildID, snap); err != nil {
		log.Printf("[WARN] queue persist failed for guild %s: %v", p.guildID, err)
	}
}

func (p *Player) touchLocked() { p.lastActive = time.Now() }

// watchdog disconnects from voice after sitting idle too long.
func (p *Player) watchdog() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.quit:
			return
		case <-ticker.C:
		}

		p.mu.Lock()
		idle := p.state == StateIdle && p.vc != nil && time.Since(p.lastActive) > p.inactivity
		vc := p.vc
		if idle {
			p.vc = nil
			p.channelID = ""
		}
		p.mu.Unlock()

		if idle {
			log.Printf("[INFO] guild %s idle for over %s, leaving voice", p.guildID, p.inactivity)
			vc.Disconnect()
		}
	}
}

// emit sends a status without blocking the playback loop.
func (p *Player) emit(status Status) {
	select {
	case p.Status <- status:
	default:
		log.Printf("[WARN] player status dropped (channel full): %s", status)
	}
}
