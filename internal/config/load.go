// internal/config/load.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrUsage marks command line errors.
var ErrUsage = errors.New("usage error")

// Usage is the command line synopsis.
const Usage = "usage: batmon [-c config.yaml] <port> <interval_ms>"

// Default returns the built-in configuration.
// Serial settings match the SCI link: 115200 8N1, 50 ms read timeout.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Driver:        "bugst",
			BaudRate:      115200,
			DataBits:      8,
			StopBits:      1,
			Parity:        "N",
			ReadTimeoutMs: 50,
		},
		Poll: PollConfig{
			SettleMs:         50,
			StartupSettleMs:  200,
			FlushBeforeWrite: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File: FileConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 7,
			},
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		Mirror: MirrorConfig{
			Protocol:  "modbus",
			UnitID:    1,
			TimeoutMs: 1000,
		},
	}
}

// Load reads a YAML file over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyArgs sets port and interval from the two positional arguments.
// It performs no I/O.
func ApplyArgs(cfg *Config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 arguments, got %d", ErrUsage, len(args))
	}

	interval, err := ParseInterval(args[1])
	if err != nil {
		return err
	}

	cfg.Serial.Port = args[0]
	cfg.Poll.IntervalMs = interval
	return nil
}

// ParseInterval parses a poll interval in milliseconds.
// It must be a positive multiple of 100.
func ParseInterval(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: interval %q is not a number", ErrUsage, s)
	}
	if err := checkInterval(v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return v, nil
}

func checkInterval(ms int) error {
	if ms <= 0 || ms%100 != 0 {
		return fmt.Errorf("interval should be in 100 ms steps and can't be 0 (got %d)", ms)
	}
	return nil
}
