// internal/poller/fakes_test.go
package poller

import (
	"context"
	"errors"
	"time"
)

// fakeClock advances virtual time on Sleep and on transport I/O.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return ctx.Err()
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// cycleScript is what the fake device does for one request.
type cycleScript struct {
	reply    []byte
	writeN   int // -1 means full length
	writeErr error
	readErr  error // returned after reply is exhausted
	ioCost   time.Duration
}

// fakeTransport replays one cycleScript per request write.
type fakeTransport struct {
	clock   *fakeClock
	scripts []cycleScript

	writes    [][]byte
	discards  int
	pending   []byte
	cur       *cycleScript
	stray     []byte // delivered on the next read if not discarded
	closed    bool
	writeTime []time.Time
}

var errClosed = errors.New("fake: port closed")

func (f *fakeTransport) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errClosed
	}
	cp := append([]byte(nil), p...)
	f.writes = append(f.writes, cp)
	if f.clock != nil {
		f.writeTime = append(f.writeTime, f.clock.Now())
	}

	// start command is not scripted
	if len(p) == 1 {
		return 1, nil
	}

	if len(f.scripts) == 0 {
		f.cur = &cycleScript{writeN: -1}
	} else {
		f.cur = &f.scripts[0]
		f.scripts = f.scripts[1:]
	}
	if f.clock != nil {
		f.clock.advance(f.cur.ioCost)
	}
	f.pending = append(f.stray, f.cur.reply...)
	f.stray = nil

	if f.cur.writeErr != nil {
		return 0, f.cur.writeErr
	}
	if f.cur.writeN >= 0 {
		return f.cur.writeN, nil
	}
	return len(p), nil
}

func (f *fakeTransport) ReadByte() (byte, bool, error) {
	if f.closed {
		return 0, false, errClosed
	}
	if len(f.pending) == 0 {
		if f.cur != nil && f.cur.readErr != nil {
			return 0, false, f.cur.readErr
		}
		return 0, false, nil
	}
	b := f.pending[0]
	f.pending = f.pending[1:]
	return b, true, nil
}

func (f *fakeTransport) DiscardInput() error {
	f.discards++
	f.pending = nil
	f.stray = nil
	return nil
}

type sinkRecorder struct {
	results []PollResult
	onCycle func(n int)
}

func (s *sinkRecorder) Report(res PollResult) {
	s.results = append(s.results, res)
	if s.onCycle != nil {
		s.onCycle(len(s.results))
	}
}
