// internal/transport/sim.go
package transport

import (
	"bytes"
	"errors"

	"github.com/tamzrod/sci-battery-monitor/internal/sci"
)

// Sim is an in-memory robot answering the battery query list.
// It ignores queries until the start command has been received.
type Sim struct {
	name    string
	started bool
	closed  bool
	inbox   []byte
	outbox  []byte
	sample  sci.BatterySample
}

// NewSim creates a simulated robot charging from half capacity.
func NewSim(name string) *Sim {
	return &Sim{
		name: name,
		sample: sci.BatterySample{
			State:        sci.StateFullCharging,
			VoltageMV:    15200,
			CurrentMA:    1250,
			TemperatureC: 28,
			ChargeMAh:    1350,
			CapacityMAh:  2700,
		},
	}
}

// Name returns the simulated port name.
func (s *Sim) Name() string { return s.name }

var errSimClosed = errors.New("transport: sim closed")

func (s *Sim) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errSimClosed
	}
	s.inbox = append(s.inbox, p...)
	s.process()
	return len(p), nil
}

func (s *Sim) ReadByte() (byte, bool, error) {
	if s.closed {
		return 0, false, errSimClosed
	}
	if len(s.outbox) == 0 {
		return 0, false, nil
	}
	b := s.outbox[0]
	s.outbox = s.outbox[1:]
	return b, true, nil
}

func (s *Sim) DiscardInput() error {
	if s.closed {
		return errSimClosed
	}
	s.outbox = s.outbox[:0]
	return nil
}

func (s *Sim) Close() error {
	s.closed = true
	return nil
}

var batteryPackets = sci.EncodeRequest()[2:]

func (s *Sim) process() {
	for len(s.inbox) > 0 {
		switch s.inbox[0] {
		case sci.OpStart:
			s.started = true
			s.inbox = s.inbox[1:]

		case sci.OpQueryList:
			if len(s.inbox) < 2 || len(s.inbox) < 2+int(s.inbox[1]) {
				return // wait for the rest of the frame
			}
			n := int(s.inbox[1])
			ids := s.inbox[2 : 2+n]
			if s.started && bytes.Equal(ids, batteryPackets) {
				frame := sci.EncodeResponse(s.sample)
				s.outbox = append(s.outbox, frame[:]...)
				s.step()
			}
			s.inbox = s.inbox[2+n:]

		default:
			s.inbox = s.inbox[1:]
		}
	}
}

// step advances the simulated charge by one poll.
func (s *Sim) step() {
	if s.sample.ChargeMAh >= s.sample.CapacityMAh {
		s.sample.State = sci.StateTrickleCharging
		s.sample.CurrentMA = 60
		return
	}
	s.sample.ChargeMAh += 5
	if s.sample.ChargeMAh > s.sample.CapacityMAh {
		s.sample.ChargeMAh = s.sample.CapacityMAh
	}
	s.sample.VoltageMV = 14000 + uint16(uint32(s.sample.ChargeMAh)*2400/uint32(s.sample.CapacityMAh))
}
