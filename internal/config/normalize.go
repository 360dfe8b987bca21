// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Serial.Driver = strings.ToLower(cfg.Serial.Driver)
	cfg.Serial.Parity = strings.ToUpper(cfg.Serial.Parity)
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	cfg.Mirror.Protocol = strings.ToLower(cfg.Mirror.Protocol)

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Device name: ASCII already validated, keep at most 16 characters.
	if len(cfg.Mirror.DeviceName) > 16 {
		cfg.Mirror.DeviceName = cfg.Mirror.DeviceName[:16]
	}
}
