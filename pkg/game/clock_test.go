package game

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) add(d time.Duration) { f.t = f.t.Add(d) }

func TestClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	cl := newClockAt(ft.now)

	ft.add(100 * time.Millisecond)
	if d := cl.Elapsed(); d != 100*time.Millisecond {
		t.Errorf("Elapsed = %s, want 100ms", d)
	}
	if cl.Played != 0 {
		t.Errorf("paused clock played %s", cl.Played)
	}

	cl.Start()
	ft.add(65 * time.Second)
	cl.Elapsed()
	if cl.String() != "1:05" {
		t.Errorf("String = %q, want 1:05", cl.String())
	}

	cl.Pause()
	ft.add(time.Second)
	if d := cl.Elapsed(); d != time.Second {
		t.Errorf("Elapsed while paused = %s, want 1s", d)
	}
	if cl.Played != 65*time.Second {
		t.Errorf("Played = %s, want 1m5s", cl.Played)
	}

	cl.Reset()
	if cl.String() != "0:00" {
		t.Errorf("String after reset = %q", cl.String())
	}
}

func TestClockBackwards(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	cl := newClockAt(ft.now)
	cl.Start()

	ft.add(-time.Second)
	if d := cl.Elapsed(); d != 0 {
		t.Errorf("Elapsed = %s, want 0", d)
	}
}
