// internal/config/config.go
package config

type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Poll    PollConfig    `yaml:"poll"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Mirror  MirrorConfig  `yaml:"mirror"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Port          string `yaml:"port"`
	Driver        string `yaml:"driver"` // bugst | goburrow | sim
	BaudRate      int    `yaml:"baud_rate"`
	DataBits      int    `yaml:"data_bits"`
	StopBits      int    `yaml:"stop_bits"`
	Parity        string `yaml:"parity"` // N | E | O
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs       int  `yaml:"interval_ms"`
	SettleMs         int  `yaml:"settle_ms"`
	StartupSettleMs  int  `yaml:"startup_settle_ms"`
	FlushBeforeWrite bool `yaml:"flush_before_write"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level  string     `yaml:"level"`
	Format string     `yaml:"format"` // console | json
	File   FileConfig `yaml:"file"`
}

// FileConfig enables rotated file output when Filename is set.
type FileConfig struct {
	Filename   string `yaml:"filename"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Listen string `yaml:"listen"` // empty disables the endpoint
	Path   string `yaml:"path"`
}

// ---- MIRROR ----

// MirrorConfig describes the optional register mirror of each sample.
type MirrorConfig struct {
	Endpoint    string `yaml:"endpoint"` // empty disables mirroring
	Protocol    string `yaml:"protocol"` // modbus | ingest
	UnitID      uint8  `yaml:"unit_id"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	BaseAddress uint16 `yaml:"base_address"`

	// Device status block (optional, opt-in)
	StatusSlot   *uint16 `yaml:"status_slot"`
	StatusUnitID *uint8  `yaml:"status_unit_id"` // defaults to unit_id
	DeviceName   string  `yaml:"device_name"`
}

// Enabled reports whether a mirror endpoint is configured.
func (m MirrorConfig) Enabled() bool {
	return m.Endpoint != ""
}

// EffectiveStatusUnitID returns the unit id used for the status block.
func (m MirrorConfig) EffectiveStatusUnitID() uint8 {
	if m.StatusUnitID != nil {
		return *m.StatusUnitID
	}
	return m.UnitID
}
