// internal/poller/clock.go
package poller

import (
	"context"
	"time"
)

// Clock is the time source used by the poller.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Schedule is a fixed-cadence tick schedule.
// Next always advances by exactly Interval, independent of how long a cycle took.
type Schedule struct {
	start    time.Time
	next     time.Time
	interval time.Duration
	ticks    uint64
}

// NewSchedule starts a schedule whose first tick is start.
func NewSchedule(start time.Time, interval time.Duration) *Schedule {
	return &Schedule{start: start, next: start, interval: interval}
}

func (s *Schedule) Start() time.Time        { return s.start }
func (s *Schedule) Next() time.Time         { return s.next }
func (s *Schedule) Interval() time.Duration { return s.interval }

// Ticks is the number of completed Advance calls.
func (s *Schedule) Ticks() uint64 { return s.ticks }

// Advance moves to the following tick: start + (n+1)*interval.
func (s *Schedule) Advance() time.Time {
	s.ticks++
	s.next = s.start.Add(time.Duration(s.ticks) * s.interval)
	return s.next
}

// Wait blocks until the current tick is due.
// A tick already in the past returns immediately.
func (s *Schedule) Wait(ctx context.Context, c Clock) error {
	return c.Sleep(ctx, s.next.Sub(c.Now()))
}
