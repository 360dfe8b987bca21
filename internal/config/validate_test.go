// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid config quickly
func valid() *Config {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB0"
	cfg.Poll.IntervalMs = 500
	return cfg
}

func slot(v uint16) *uint16 { return &v }
func unitID(v uint8) *uint8 { return &v }

// ---- tests ----

func TestValidate_DefaultsWithArgs(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingPort(t *testing.T) {
	cfg := valid()
	cfg.Serial.Port = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing port error, got nil")
	}
}

func TestValidate_BadInterval(t *testing.T) {
	for _, ms := range []int{0, 99, 150, -100} {
		cfg := valid()
		cfg.Poll.IntervalMs = ms

		if err := Validate(cfg); err == nil {
			t.Fatalf("interval %d: expected error, got nil", ms)
		}
	}
}

func TestValidate_SerialFraming(t *testing.T) {
	cases := map[string]func(*Config){
		"driver":    func(c *Config) { c.Serial.Driver = "tarm" },
		"baud":      func(c *Config) { c.Serial.BaudRate = 0 },
		"data bits": func(c *Config) { c.Serial.DataBits = 9 },
		"stop bits": func(c *Config) { c.Serial.StopBits = 3 },
		"parity":    func(c *Config) { c.Serial.Parity = "M" },
		"timeout":   func(c *Config) { c.Serial.ReadTimeoutMs = 0 },
	}

	for name, mutate := range cases {
		cfg := valid()
		mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected error, got nil", name)
		}
	}
}

func TestValidate_CaseInsensitiveEnums(t *testing.T) {
	cfg := valid()
	cfg.Serial.Driver = "GoBurrow"
	cfg.Serial.Parity = "n"
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = "JSON"

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusSlotRequiresEndpoint(t *testing.T) {
	cfg := valid()
	cfg.Mirror.StatusSlot = slot(1)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_DeviceNameASCII(t *testing.T) {
	cfg := valid()
	cfg.Mirror.DeviceName = "röomba"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ASCII error, got nil")
	}
}

func TestValidate_MirrorProtocol(t *testing.T) {
	cfg := valid()
	cfg.Mirror.Endpoint = "127.0.0.1:502"
	cfg.Mirror.Protocol = "mqtt"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected protocol error, got nil")
	}
}

func TestValidate_TouchingRangesAllowed(t *testing.T) {
	cfg := valid()
	cfg.Mirror.Endpoint = "127.0.0.1:502"
	cfg.Mirror.BaseAddress = 13 // 13-19
	cfg.Mirror.StatusSlot = slot(1) // 20-39

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_OverlapDetected(t *testing.T) {
	cfg := valid()
	cfg.Mirror.Endpoint = "127.0.0.1:502"
	cfg.Mirror.BaseAddress = 15 // 15-21
	cfg.Mirror.StatusSlot = slot(1) // 20-39 -> overlap

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected overlap error, got nil")
	}
}

func TestValidate_NoOverlapDifferentUnit(t *testing.T) {
	cfg := valid()
	cfg.Mirror.Endpoint = "127.0.0.1:502"
	cfg.Mirror.BaseAddress = 0
	cfg.Mirror.StatusSlot = slot(0)
	cfg.Mirror.StatusUnitID = unitID(2)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SampleBlockAddressSpace(t *testing.T) {
	cfg := valid()
	cfg.Mirror.Endpoint = "127.0.0.1:502"
	cfg.Mirror.BaseAddress = 0xFFFE

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected address space error, got nil")
	}
}
