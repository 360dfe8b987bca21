// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/sci-battery-monitor/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// SERIAL
	// ------------------------------------------------------------

	s := cfg.Serial
	if s.Port == "" {
		return fmt.Errorf("serial: port is required")
	}
	switch strings.ToLower(s.Driver) {
	case "bugst", "goburrow", "sim":
	default:
		return fmt.Errorf("serial: unknown driver %q (want bugst, goburrow or sim)", s.Driver)
	}
	if s.BaudRate <= 0 {
		return fmt.Errorf("serial: baud_rate must be > 0")
	}
	if s.DataBits < 5 || s.DataBits > 8 {
		return fmt.Errorf("serial: data_bits must be 5..8, got %d", s.DataBits)
	}
	if s.StopBits != 1 && s.StopBits != 2 {
		return fmt.Errorf("serial: stop_bits must be 1 or 2, got %d", s.StopBits)
	}
	switch strings.ToUpper(s.Parity) {
	case "N", "E", "O":
	default:
		return fmt.Errorf("serial: parity must be N, E or O, got %q", s.Parity)
	}
	if s.ReadTimeoutMs <= 0 {
		return fmt.Errorf("serial: read_timeout_ms must be > 0")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if err := checkInterval(cfg.Poll.IntervalMs); err != nil {
		return fmt.Errorf("poll: %w", err)
	}
	if cfg.Poll.SettleMs < 0 || cfg.Poll.StartupSettleMs < 0 {
		return fmt.Errorf("poll: settle delays must be >= 0")
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", cfg.Logging.Format)
	}

	// ------------------------------------------------------------
	// METRICS
	// ------------------------------------------------------------

	if p := cfg.Metrics.Path; p != "" && !strings.HasPrefix(p, "/") {
		return fmt.Errorf("metrics: path must start with '/', got %q", p)
	}

	return validateMirror(cfg.Mirror)
}

func validateMirror(m MirrorConfig) error {
	// device_name sanity (ASCII only)
	for i := 0; i < len(m.DeviceName); i++ {
		if m.DeviceName[i] > 0x7F {
			return fmt.Errorf("mirror: device_name must contain ASCII characters only")
		}
	}

	if !m.Enabled() {
		if m.StatusSlot != nil {
			return fmt.Errorf("mirror: status_slot is set but no endpoint is defined")
		}
		return nil
	}

	switch strings.ToLower(m.Protocol) {
	case "modbus", "ingest":
	default:
		return fmt.Errorf("mirror: unknown protocol %q (want modbus or ingest)", m.Protocol)
	}
	if m.TimeoutMs <= 0 {
		return fmt.Errorf("mirror: timeout_ms must be > 0")
	}

	// ------------------------------------------------------------
	// DESTINATION MEMORY GEOMETRY
	// ------------------------------------------------------------

	dataStart := uint32(m.BaseAddress)
	dataEnd := dataStart + status.SampleRegisters - 1
	if dataEnd > 0xFFFF {
		return fmt.Errorf(
			"mirror: sample block %d-%d exceeds the register address space",
			dataStart, dataEnd,
		)
	}

	if m.StatusSlot == nil {
		return nil
	}

	statusStart := uint32(*m.StatusSlot) * status.SlotsPerDevice
	statusEnd := statusStart + status.SlotsPerDevice - 1
	if statusEnd > 0xFFFF {
		return fmt.Errorf("mirror: status_slot %d exceeds the register address space", *m.StatusSlot)
	}

	// overlap check (inclusive), only meaningful within one unit
	if m.EffectiveStatusUnitID() == m.UnitID {
		if !(dataEnd < statusStart || dataStart > statusEnd) {
			return fmt.Errorf(
				"memory overlap: unit_id=%d sample range=%d-%d overlaps status slot %d range=%d-%d",
				m.UnitID, dataStart, dataEnd, *m.StatusSlot, statusStart, statusEnd,
			)
		}
	}

	return nil
}
