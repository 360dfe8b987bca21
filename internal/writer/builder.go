// internal/writer/builder.go
package writer

import (
	"fmt"
	"strings"
	"time"

	cfg "github.com/tamzrod/sci-battery-monitor/internal/config"
	"github.com/tamzrod/sci-battery-monitor/internal/writer/ingest"
	wmodbus "github.com/tamzrod/sci-battery-monitor/internal/writer/modbus"
)

// BuildPlan converts the mirror config into a Plan.
// Assumes config has already passed validation.
func BuildPlan(m cfg.MirrorConfig) Plan {
	plan := Plan{
		Endpoint:    m.Endpoint,
		UnitID:      m.UnitID,
		BaseAddress: m.BaseAddress,
	}

	if m.StatusSlot != nil {
		plan.Status = &StatusPlan{
			Endpoint:   m.Endpoint,
			UnitID:     m.EffectiveStatusUnitID(),
			BaseSlot:   *m.StatusSlot,
			DeviceName: m.DeviceName,
		}
	}

	return plan
}

// BuildEndpointClient creates the client for the configured protocol.
func BuildEndpointClient(m cfg.MirrorConfig) (EndpointClient, func() error, error) {
	timeout := time.Duration(m.TimeoutMs) * time.Millisecond

	switch strings.ToLower(m.Protocol) {
	case "", "modbus":
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{Endpoint: m.Endpoint, Timeout: timeout})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	case "ingest":
		c, err := ingest.NewEndpointClient(ingest.Config{Endpoint: m.Endpoint, Timeout: timeout})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown protocol %q", m.Protocol)
	}
}
