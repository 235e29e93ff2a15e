// Package queue implements the guild-scoped play queue: ordered tracks,
// a current position, loop modes and a bounded history of played tracks.
// It is not safe for concurrent use on its own; the player serializes access.
package queue

import (
	"math/rand"
	"slices"

	"groovebox/internal/music/track"
)

// LoopMode controls what Advance does at track and queue boundaries.
type LoopMode string

const (
	LoopOff LoopMode = "off"
	LoopOne LoopMode = "one" // repeat current track
	LoopAll LoopMode = "all" // repeat entire queue
)

// ParseLoopMode maps a stored/user string to a LoopMode, defaulting to off.
func ParseLoopMode(s string) LoopMode {
	switch LoopMode(s) {
	case LoopOne:
		return LoopOne
	case LoopAll:
		return LoopAll
	default:
		return LoopOff
	}
}

const historyLimit = 50

// Queue holds the ordered track list and the index of the current track.
type Queue struct {
	tracks  []track.Track
	current int
	loop    LoopMode
	maxSize int
	history []track.Track
}

// Snapshot is the persistable state of a queue.
type Snapshot struct {
	Tracks       []track.Track `json:"tracks"`
	CurrentIndex int           `json:"current_index"`
	LoopMode     string        `json:"loop_mode"`
}

// New creates an empty queue bounded to maxSize tracks.
func New(maxSize int) *Queue {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Queue{maxSize: maxSize}
}

func (q *Queue) Size() int      { return len(q.tracks) }
func (q *Queue) IsEmpty() bool  { return len(q.tracks) == 0 }
func (q *Queue) Loop() LoopMode { return q.loop }

func (q *Queue) SetLoop(mode LoopMode) { q.loop = mode }

// Current returns the track at the play position, or nil.
func (q *Queue) Current() *track.Track {
	if q.current >= 0 && q.current < len(q.tracks) {
		t := q.tracks[q.current]
		return &t
	}
	return nil
}

// CurrentIndex returns the play position.
func (q *Queue) CurrentIndex() int { return q.current }

// Tracks returns a copy of all tracks in order.
func (q *Queue) Tracks() []track.Track {
	return slices.Clone(q.tracks)
}

// Upcoming returns the tracks after the current one.
func (q *Queue) Upcoming() []track.Track {
	if q.current+1 < len(q.tracks) {
		return slices.Clone(q.tracks[q.current+1:])
	}
	return nil
}

// History returns the recently played tracks, oldest first.
func (q *Queue) History() []track.Track {
	return slices.Clone(q.history)
}

// TotalDuration sums the duration of every queued track.
func (q *Queue) TotalDuration() (total int64) {
	for _, t := range q.tracks {
		total += int64(t.Duration)
	}
	return total
}

// Add appends a track. Returns false when the queue is full.
func (q *Queue) Add(t track.Track) bool {
	if len(q.tracks) >= q.maxSize {
		return false
	}
	q.tracks = append(q.tracks, t)
	return true
}

// AddAll appends as many tracks as fit and returns how many were added.
func (q *Queue) AddAll(ts []track.Track) int {
	free := q.maxSize - len(q.tracks)
	if free <= 0 {
		return 0
	}
	if len(ts) > free {
		ts = ts[:free]
	}
	q.tracks = append(q.tracks, ts...)
	return len(ts)
}

// Insert places a track at index, never before the current position.
func (q *Queue) Insert(index int, t track.Track) bool {
	if len(q.tracks) >= q.maxSize {
		return false
	}
	index = max(q.current+1, min(index, len(q.tracks)))
	q.tracks = slices.Insert(q.tracks, index, t)
	return true
}

// Remove deletes the track at index and returns it, keeping the current
// position pointing at the same track where possible.
func (q *Queue) Remove(index int) *track.Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	t := q.tracks[index]
	q.tracks = slices.Delete(q.tracks, index, index+1)

	if index < q.current {
		q.current--
	} else if index == q.current && q.current >= len(q.tracks) {
		q.current = max(0, len(q.tracks)-1)
	}
	return &t
}

// Clear drops every track and resets the position.
func (q *Queue) Clear() {
	q.tracks = nil
	q.current = 0
}

// ClearUpcoming drops the tracks after the current one and returns how many
// were removed.
func (q *Queue) ClearUpcoming() int {
	if q.current+1 >= len(q.tracks) {
		return 0
	}
	removed := len(q.tracks) - q.current - 1
	q.tracks = q.tracks[:q.current+1]
	return removed
}

// Advance moves to the next track honoring the loop mode. It returns nil when
// the queue is exhausted. The finished track is pushed to history.
func (q *Queue) Advance() *track.Track {
	if q.IsEmpty() {
		return nil
	}

	if cur := q.Current(); cur != nil {
		q.history = append(q.history, *cur)
		if len(q.history) > historyLimit {
			q.history = q.history[len(q.history)-historyLimit:]
		}
	}

	switch {
	case q.loop == LoopOne:
		return q.Current()
	case q.current+1 < len(q.tracks):
		q.current++
		return q.Current()
	case q.loop == LoopAll:
		q.current = 0
		return q.Current()
	}
	return nil
}

// Previous steps the position back, wrapping only in loop-all mode.
func (q *Queue) Previous() *track.Track {
	if q.current > 0 {
		q.current--
		return q.Current()
	}
	if q.loop == LoopAll && len(q.tracks) > 0 {
		q.current = len(q.tracks) - 1
		return q.Current()
	}
	return nil
}

// Jump sets the position to index.
func (q *Queue) Jump(index int) *track.Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	q.current = index
	return q.Current()
}

// Shuffle randomizes the upcoming tracks, leaving the current and already
// played ones in place.
func (q *Queue) Shuffle() {
	if q.current+1 >= len(q.tracks) {
		return
	}
	upcoming := q.tracks[q.current+1:]
	rand.Shuffle(len(upcoming), func(i, j int) {
		upcoming[i], upcoming[j] = upcoming[j], upcoming[i]
	})
}

// Move relocates a track from one index to another, adjusting the current
// position so the playing track stays the same.
func (q *Queue) Move(from, to int) bool {
	if from < 0 || from >= len(q.tracks) || to < 0 || to >= len(q.tracks) {
		return false
	}
	t := q.tracks[from]
	q.tracks = slices.Delete(q.tracks, from, from+1)
	q.tracks = slices.Insert(q.tracks, to, t)

	switch {
	case from == q.current:
		q.current = to
	case from < q.current && q.current <= to:
		q.current--
	case to <= q.current && q.current < from:
		q.current++
	}
	return true
}

// Snapshot captures the queue state for persistence.
func (q *Queue) Snapshot() Snapshot {
	return Snapshot{
		Tracks:       q.Tracks(),
		CurrentIndex: q.current,
		LoopMode:     string(q.loop),
	}
}

// Restore replaces the queue state from a snapshot, clamping the position
// into range.
func (q *Queue) Restore(s Snapshot) {
	q.tracks = slices.Clone(s.Tracks)
	q.current = min(s.CurrentIndex, max(0, len(q.tracks)-1))
	if q.current < 0 {
		q.current = 0
	}
	q.loop = ParseLoopMode(s.LoopMode)
}
