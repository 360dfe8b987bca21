// internal/writer/writer.go
package writer

import (
	"fmt"

	"github.com/tamzrod/sci-battery-monitor/internal/poller"
	"github.com/tamzrod/sci-battery-monitor/internal/status"
)

// areaHoldingRegisters is the memory area for all mirror writes (FC 3 memory).
const areaHoldingRegisters byte = 3

// EndpointClient is the exact contract the writers use.
// IMPORTANT: There must be NO other version of this interface anywhere.
type EndpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}

type sampleWriter struct {
	plan Plan
	cli  EndpointClient
}

// New returns a Writer that mirrors decoded samples.
// Cycles without a sample write nothing.
func New(plan Plan, cli EndpointClient) Writer {
	return &sampleWriter{plan: plan, cli: cli}
}

func (w *sampleWriter) Write(res poller.PollResult) error {
	if res.Sample == nil {
		return nil
	}
	if w.cli == nil {
		return fmt.Errorf("writer: missing client for endpoint %s", w.plan.Endpoint)
	}

	regs := status.EncodeSample(*res.Sample)
	if err := w.cli.WriteRegisters(areaHoldingRegisters, w.plan.UnitID, w.plan.BaseAddress, regs); err != nil {
		return fmt.Errorf(
			"writer: ep=%s unit=%d addr=%d err=%w",
			w.plan.Endpoint, w.plan.UnitID, w.plan.BaseAddress, err,
		)
	}
	return nil
}
