// internal/sci/codec.go
package sci

import "encoding/binary"

// SCI opcodes used by the monitor.
const (
	OpStart     byte = 0x80 // 128 "start"
	OpQueryList byte = 0x95 // 149 "query list"
)

// Sensor packet IDs, in request order.
// The response field order follows this order exactly.
const (
	PacketChargingState byte = 21
	PacketVoltage       byte = 22
	PacketCurrent       byte = 23
	PacketTemperature   byte = 24
	PacketCharge        byte = 25
	PacketCapacity      byte = 26
)

// ResponseLen is the fixed size of the query-list response for the six packets.
const ResponseLen = 10

// Response layout (byte offsets).
const (
	offState       = 0
	offVoltage     = 1
	offCurrent     = 3
	offTemperature = 5
	offCharge      = 6
	offCapacity    = 8
)

var (
	startCommand = [...]byte{OpStart}

	sensorRequest = [...]byte{
		OpQueryList,
		6,
		PacketChargingState,
		PacketVoltage,
		PacketCurrent,
		PacketTemperature,
		PacketCharge,
		PacketCapacity,
	}
)

// StartCommand returns the one-time handshake frame.
func StartCommand() []byte {
	out := make([]byte, len(startCommand))
	copy(out, startCommand[:])
	return out
}

// EncodeRequest returns the query-list frame for the battery packets.
// Every call returns a fresh slice; callers may mutate it.
func EncodeRequest() []byte {
	out := make([]byte, len(sensorRequest))
	copy(out, sensorRequest[:])
	return out
}

// DecodeResponse unpacks a complete response frame.
// All multi-byte fields are big-endian. Never fails.
func DecodeResponse(frame [ResponseLen]byte) BatterySample {
	return BatterySample{
		State:        frame[offState],
		VoltageMV:    binary.BigEndian.Uint16(frame[offVoltage:]),
		CurrentMA:    int16(binary.BigEndian.Uint16(frame[offCurrent:])),
		TemperatureC: int8(frame[offTemperature]),
		ChargeMAh:    binary.BigEndian.Uint16(frame[offCharge:]),
		CapacityMAh:  binary.BigEndian.Uint16(frame[offCapacity:]),
	}
}

// EncodeResponse packs a sample back into device byte order.
// It is the inverse of DecodeResponse.
func EncodeResponse(s BatterySample) [ResponseLen]byte {
	var frame [ResponseLen]byte
	frame[offState] = s.State
	binary.BigEndian.PutUint16(frame[offVoltage:], s.VoltageMV)
	binary.BigEndian.PutUint16(frame[offCurrent:], uint16(s.CurrentMA))
	frame[offTemperature] = byte(s.TemperatureC)
	binary.BigEndian.PutUint16(frame[offCharge:], s.ChargeMAh)
	binary.BigEndian.PutUint16(frame[offCapacity:], s.CapacityMAh)
	return frame
}
