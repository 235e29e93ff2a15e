package queue

import (
	"testing"
	"time"

	"groovebox/internal/music/track"
)

func mk(title string) track.Track {
	return track.Track{Title: title, URL: "https://example.com/" + title, Duration: time.Minute}
}

func fill(q *Queue, titles ...string) {
	for _, title := range titles {
		q.Add(mk(title))
	}
}

func titleAt(t *testing.T, q *Queue, want string) {
	t.Helper()
	cur := q.Current()
	if cur == nil {
		t.Fatalf("current is nil, want %q", want)
	}
	if cur.Title != want {
		t.Fatalf("current = %q, want %q", cur.Title, want)
	}
}

func TestAdvanceLoopOff(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c")

	titleAt(t, q, "a")
	if next := q.Advance(); next == nil || next.Title != "b" {
		t.Fatalf("advance = %v, want b", next)
	}
	q.Advance()
	if next := q.Advance(); next != nil {
		t.Fatalf("advance past end = %q, want nil", next.Title)
	}
}

func TestAdvanceLoopOne(t *testing.T) {
	q := New(10)
	fill(q, "a", "b")
	q.SetLoop(LoopOne)

	for i := 0; i < 3; i++ {
		if next := q.Advance(); next == nil || next.Title != "a" {
			t.Fatalf("advance %d = %v, want a", i, next)
		}
	}
}

func TestAdvanceLoopAllWraps(t *testing.T) {
	q := New(10)
	fill(q, "a", "b")
	q.SetLoop(LoopAll)

	q.Advance() // b
	if next := q.Advance(); next == nil || next.Title != "a" {
		t.Fatalf("wrap = %v, want a", next)
	}
}

func TestPrevious(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c")

	if prev := q.Previous(); prev != nil {
		t.Fatalf("previous at start = %q, want nil", prev.Title)
	}
	q.Jump(2)
	if prev := q.Previous(); prev == nil || prev.Title != "b" {
		t.Fatalf("previous = %v, want b", prev)
	}

	q.SetLoop(LoopAll)
	q.Jump(0)
	if prev := q.Previous(); prev == nil || prev.Title != "c" {
		t.Fatalf("previous with loop all = %v, want c", prev)
	}
}

func TestMaxSize(t *testing.T) {
	q := New(2)
	if !q.Add(mk("a")) || !q.Add(mk("b")) {
		t.Fatal("adds within capacity failed")
	}
	if q.Add(mk("c")) {
		t.Fatal("add past capacity succeeded")
	}
	if n := q.AddAll([]track.Track{mk("d"), mk("e")}); n != 0 {
		t.Fatalf("AddAll on full queue = %d, want 0", n)
	}
}

func TestAddAllPartial(t *testing.T) {
	q := New(3)
	fill(q, "a")
	if n := q.AddAll([]track.Track{mk("b"), mk("c"), mk("d")}); n != 2 {
		t.Fatalf("AddAll = %d, want 2", n)
	}
	if q.Size() != 3 {
		t.Fatalf("size = %d, want 3", q.Size())
	}
}

func TestRemoveAdjustsCurrent(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c", "d")
	q.Jump(2) // c

	// removing before current shifts the index back
	if got := q.Remove(0); got == nil || got.Title != "a" {
		t.Fatalf("remove = %v, want a", got)
	}
	titleAt(t, q, "c")

	// removing the last track while it is current clamps the index
	q.Jump(2) // d
	q.Remove(2)
	titleAt(t, q, "c")
}

func TestInsertNeverBeforeCurrent(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c")
	q.Jump(1)

	q.Insert(0, mk("x"))
	titleAt(t, q, "b")
	if got := q.Tracks()[2].Title; got != "x" {
		t.Fatalf("inserted at %q, want x right after current", got)
	}
}

func TestMoveKeepsCurrentTrack(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c", "d")
	q.Jump(1) // b

	if !q.Move(3, 0) { // d to front
		t.Fatal("move failed")
	}
	titleAt(t, q, "b")

	if !q.Move(q.CurrentIndex(), 3) { // move the playing track itself
		t.Fatal("move failed")
	}
	titleAt(t, q, "b")
	if q.CurrentIndex() != 3 {
		t.Fatalf("current index = %d, want 3", q.CurrentIndex())
	}
}

func TestShuffleOnlyUpcoming(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c", "d", "e")
	q.Jump(1)

	q.Shuffle()
	tracks := q.Tracks()
	if tracks[0].Title != "a" || tracks[1].Title != "b" {
		t.Fatalf("shuffle touched played/current tracks: %q %q", tracks[0].Title, tracks[1].Title)
	}
}

func TestShuffleEmptyQueue(t *testing.T) {
	q := New(10)
	q.Shuffle() // must not panic
	if q.Size() != 0 {
		t.Fatalf("size = %d, want 0", q.Size())
	}
}

func TestShuffleAtLastTrack(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c")
	q.Jump(2)

	q.Shuffle() // nothing upcoming, must not panic
	tracks := q.Tracks()
	if tracks[0].Title != "a" || tracks[1].Title != "b" || tracks[2].Title != "c" {
		t.Fatalf("shuffle reordered with no upcoming tracks: %v", tracks)
	}
}

func TestClearUpcoming(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c")

	if n := q.ClearUpcoming(); n != 2 {
		t.Fatalf("cleared = %d, want 2", n)
	}
	if q.Size() != 1 {
		t.Fatalf("size = %d, want 1", q.Size())
	}
	titleAt(t, q, "a")
}

func TestHistoryCapped(t *testing.T) {
	q := New(200)
	q.SetLoop(LoopOne)
	q.Add(mk("a"))
	for i := 0; i < historyLimit+10; i++ {
		q.Advance()
	}
	if n := len(q.History()); n != historyLimit {
		t.Fatalf("history length = %d, want %d", n, historyLimit)
	}
}

func TestSnapshotRestore(t *testing.T) {
	q := New(10)
	fill(q, "a", "b", "c")
	q.Jump(1)
	q.SetLoop(LoopAll)

	snap := q.Snapshot()

	r := New(10)
	r.Restore(snap)
	titleAt(t, r, "b")
	if r.Loop() != LoopAll {
		t.Fatalf("loop = %q, want all", r.Loop())
	}

	// out-of-range index clamps instead of panicking
	snap.CurrentIndex = 99
	r.Restore(snap)
	titleAt(t, r, "c")
}
