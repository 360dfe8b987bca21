// internal/poller/runner_test.go
package poller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_NoDrift(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSchedule(start, 300*time.Millisecond)

	for n := 1; n <= 1000; n++ {
		got := s.Advance()
		require.Equal(t, start.Add(time.Duration(n)*300*time.Millisecond), got)
	}
	assert.Equal(t, uint64(1000), s.Ticks())
}

func TestSchedule_WaitLateTickReturnsImmediately(t *testing.T) {
	clk := newFakeClock()
	s := NewSchedule(clk.Now(), 100*time.Millisecond)
	s.Advance()
	clk.advance(250 * time.Millisecond)

	require.NoError(t, s.Wait(context.Background(), clk))
	assert.Equal(t, []time.Duration{-150 * time.Millisecond}, clk.sleeps)
}

// runCycles runs the loop until n results were reported.
func runCycles(t *testing.T, p *Poller, n int) *sinkRecorder {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &sinkRecorder{onCycle: func(count int) {
		if count == n {
			cancel()
		}
	}}

	err := p.Run(ctx, rec)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, rec.results, n)
	return rec
}

func TestRun_FixedCadenceDespiteVariableIO(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	costs := []time.Duration{10, 120, 400, 0, 449} // ms, all below interval minus settle
	var scripts []cycleScript
	for _, c := range costs {
		scripts = append(scripts, cycleScript{reply: fullChargingFrame, writeN: -1, ioCost: c * time.Millisecond})
	}
	tr := &fakeTransport{clock: clk, scripts: scripts}
	p := newTestPoller(t, tr, clk, true)

	rec := runCycles(t, p, len(costs))

	for n, res := range rec.results {
		want := start.Add(time.Duration(n) * 500 * time.Millisecond)
		assert.Equal(t, uint64(n), res.Seq)
		assert.Equal(t, want, res.At, "cycle %d", n)
		assert.Equal(t, time.Duration(n)*500*time.Millisecond, res.Elapsed)
		assert.Equal(t, want, tr.writeTime[n], "request %d sent on tick", n)
		assert.True(t, res.OK())
	}
}

func TestRun_FramingErrorKeepsSchedule(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	tr := &fakeTransport{clock: clk, scripts: []cycleScript{
		{reply: fullChargingFrame[:7], writeN: -1, ioCost: 70 * time.Millisecond},
		{reply: fullChargingFrame, writeN: -1},
	}}
	p := newTestPoller(t, tr, clk, true)

	rec := runCycles(t, p, 2)

	assert.Equal(t, 3, rec.results[0].Missing)
	assert.Nil(t, rec.results[0].Sample)
	assert.True(t, rec.results[1].OK())
	assert.Equal(t, start.Add(500*time.Millisecond), rec.results[1].At)
	assert.Equal(t, start.Add(500*time.Millisecond), tr.writeTime[1])
}

func TestRun_SlowCycleDoesNotShiftLaterTicks(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	tr := &fakeTransport{clock: clk, scripts: []cycleScript{
		{reply: fullChargingFrame, writeN: -1, ioCost: 700 * time.Millisecond}, // overruns
		{reply: fullChargingFrame, writeN: -1},
		{reply: fullChargingFrame, writeN: -1},
	}}
	p := newTestPoller(t, tr, clk, true)

	rec := runCycles(t, p, 3)

	// tick 1 runs late, tick 2 is back on the grid
	assert.Equal(t, start.Add(500*time.Millisecond), rec.results[1].At)
	assert.Equal(t, start.Add(1000*time.Millisecond), tr.writeTime[2])
}

func TestRun_ClosedTransportKeepsLooping(t *testing.T) {
	clk := newFakeClock()
	tr := &fakeTransport{clock: clk, closed: true}
	p := newTestPoller(t, tr, clk, true)

	rec := runCycles(t, p, 3)

	for _, res := range rec.results {
		assert.Error(t, res.WriteErr)
		assert.Error(t, res.ReadErr)
		assert.Equal(t, 10, res.Missing)
	}
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	clk := newFakeClock()
	tr := &fakeTransport{clock: clk}
	p := newTestPoller(t, tr, clk, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &sinkRecorder{}
	assert.ErrorIs(t, p.Run(ctx, rec), context.Canceled)
	assert.Empty(t, rec.results)
	assert.Empty(t, tr.writes)
}
