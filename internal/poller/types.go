// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/sci-battery-monitor/internal/sci"
	"github.com/tamzrod/sci-battery-monitor/internal/status"
)

// PollResult is a snapshot produced by one poll cycle.
// Exactly one of Sample or Missing > 0 describes the frame outcome.
type PollResult struct {
	Seq     uint64
	At      time.Time     // scheduled tick
	Elapsed time.Duration // At minus loop start

	// WriteErr is set when the request could not be fully written.
	// The cycle still attempts a read.
	WriteErr error

	// Received is the number of response bytes accumulated.
	Received int
	// Missing is ResponseLen - Received; 0 for a complete frame.
	Missing int
	// ReadErr is the transport error that ended the read early, if any.
	ReadErr error
	// FlushErr is any error from discarding input after the read.
	FlushErr error

	// Sample is nil unless a complete frame was decoded.
	Sample *sci.BatterySample
	State  sci.ChargeState
}

// OK reports whether the cycle produced a decoded sample.
func (r PollResult) OK() bool {
	return r.Sample != nil
}

// FramingError reports whether fewer than ResponseLen bytes arrived.
func (r PollResult) FramingError() bool {
	return r.Missing > 0
}

// ErrorCode classifies the cycle for the device status block.
func (r PollResult) ErrorCode() uint16 {
	switch {
	case r.OK():
		return status.ErrorNone
	case r.WriteErr != nil:
		return status.ErrorWrite
	case r.ReadErr != nil:
		return status.ErrorRead
	default:
		return status.ErrorFraming
	}
}

// Sink receives every PollResult, synchronously, once per cycle.
type Sink interface {
	Report(res PollResult)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(res PollResult)

func (f SinkFunc) Report(res PollResult) { f(res) }
