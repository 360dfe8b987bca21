// internal/poller/runner.go
package poller

import (
	"context"
)

// Run drives PollOnce on a fixed cadence and hands every result to sink.
// It returns only when ctx is done. No overlap, no retries.
func (p *Poller) Run(ctx context.Context, sink Sink) error {
	sched := NewSchedule(p.clock.Now(), p.cfg.Interval)

	for seq := uint64(0); ; seq++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tick := sched.Next()
		res := p.PollOnce(ctx)
		res.Seq = seq
		res.At = tick
		res.Elapsed = tick.Sub(sched.Start())

		sink.Report(res)

		sched.Advance()
		if err := sched.Wait(ctx, p.clock); err != nil {
			return err
		}
	}
}
