// internal/writer/types.go
package writer

import "github.com/tamzrod/sci-battery-monitor/internal/poller"

// Plan is the fully-built mirror plan.
type Plan struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16

	// Status is nil when the device status block is disabled.
	Status *StatusPlan
}

// StatusPlan locates the device status block.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// Writer writes poll snapshots into target memory.
type Writer interface {
	Write(res poller.PollResult) error
}
