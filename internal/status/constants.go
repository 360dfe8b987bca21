// internal/status/constants.go
package status

// Register layout constants for the mirrored memory.
// These values define the protocol and MUST NOT be configurable.

// ---- SAMPLE BLOCK ----

// SampleRegisters is the number of holding registers written per sample.
const SampleRegisters = 7

// Sample register indices, relative to the mirror base address.
const (
	RegState         = 0
	RegVoltage       = 1
	RegCurrent       = 2 // int16, two's complement
	RegTemperature   = 3 // int8 sign-extended to int16
	RegCharge        = 4
	RegCapacity      = 5
	RegChargePercent = 6 // percent x100, saturates at 65535
)

// ---- STATUS BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the device health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last error class code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the device has been in error.
const SlotSecondsInError = 2

// ---- RESERVED RANGE ----

// Slots 3-10 are reserved for future use.
const SlotReservedStart = 3
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// MaxSecondsInError is where SecondsInError saturates.
const MaxSecondsInError = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy device.
const HealthOK uint16 = 1

// HealthError represents a device error state.
const HealthError uint16 = 2

// HealthStale represents a stale data state.
const HealthStale uint16 = 3

// HealthDisabled represents a disabled device state.
const HealthDisabled uint16 = 4

// ---- ERROR CLASS CODES ----

// ErrorNone means the last cycle decoded a sample.
const ErrorNone uint16 = 0

// ErrorWrite means the request could not be written.
const ErrorWrite uint16 = 1

// ErrorFraming means fewer than 10 response bytes arrived.
const ErrorFraming uint16 = 2

// ErrorRead means the transport failed while reading the response.
const ErrorRead uint16 = 3
