// internal/writer/mirror.go
package writer

import (
	"go.uber.org/zap"

	"github.com/tamzrod/sci-battery-monitor/internal/poller"
	"github.com/tamzrod/sci-battery-monitor/internal/status"
)

// Mirror is a poller.Sink delivering samples and device status.
// Write failures are logged and never reach the poll loop.
type Mirror struct {
	data    Writer
	statusW *deviceStatusWriter
	tracker *status.Tracker
	log     *zap.Logger

	started bool
}

// NewMirror wires the writers for one plan.
func NewMirror(plan Plan, cli EndpointClient, log *zap.Logger) *Mirror {
	m := &Mirror{
		data:    New(plan, cli),
		tracker: status.NewTracker(),
		log:     log,
	}
	if sw, ok := NewDeviceStatusWriter(plan, cli); ok {
		m.statusW = sw
	}
	return m
}

// Start asserts the initial (unknown) status block.
func (m *Mirror) Start() {
	m.started = true
	if m.statusW == nil {
		return
	}
	if err := m.statusW.WriteStatus(m.tracker.Snapshot()); err != nil {
		m.log.Warn("status write failed on start", zap.Error(err))
	}
}

func (m *Mirror) Report(res poller.PollResult) {
	if !m.started {
		m.Start()
	}

	if err := m.data.Write(res); err != nil {
		m.log.Warn("mirror write failed", zap.Uint64("seq", res.Seq), zap.Error(err))
	}

	if m.statusW == nil {
		return
	}

	// Snapshot changes are pushed; a pending full re-assert is retried every cycle.
	changed := m.tracker.Observe(res.Elapsed, res.ErrorCode())
	if !changed && !m.statusW.needFull {
		return
	}
	if err := m.statusW.WriteStatus(m.tracker.Snapshot()); err != nil {
		m.log.Warn("status write failed", zap.Uint64("seq", res.Seq), zap.Error(err))
	}
}
