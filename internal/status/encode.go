// internal/status/encode.go
package status

import (
	"math"

	"github.com/tamzrod/sci-battery-monitor/internal/sci"
)

// Encode converts a Snapshot into a full device status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, deviceName string) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotSecondsInError] = s.SecondsInError

	// Slots 3..10 are RESERVED and left as zero.

	copy(regs[SlotDeviceNameStart:SlotDeviceNameEnd+1], EncodeDeviceName(deviceName))

	return regs
}

// EncodeSample converts a battery sample into the sample register block.
func EncodeSample(s sci.BatterySample) []uint16 {
	regs := make([]uint16, SampleRegisters)

	regs[RegState] = uint16(s.State)
	regs[RegVoltage] = s.VoltageMV
	regs[RegCurrent] = uint16(s.CurrentMA)
	regs[RegTemperature] = uint16(int16(s.TemperatureC))
	regs[RegCharge] = s.ChargeMAh
	regs[RegCapacity] = s.CapacityMAh

	pct := math.Round(s.ChargePercent() * 100)
	if pct > math.MaxUint16 {
		pct = math.MaxUint16
	}
	regs[RegChargePercent] = uint16(pct)

	return regs
}

// EncodeDeviceName packs up to 16 ASCII characters into 8 uint16 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeDeviceName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
