// internal/sci/sample.go
package sci

// BatterySample is one decoded battery reading.
// Values are copied verbatim from the device; units are in the field names.
type BatterySample struct {
	State        uint8
	VoltageMV    uint16
	CurrentMA    int16
	TemperatureC int8
	ChargeMAh    uint16
	CapacityMAh  uint16
}

// ChargeState classifies the raw state byte.
func (s BatterySample) ChargeState() ChargeState {
	return Classify(s.State)
}

// ChargePercent returns charge as a percentage of capacity.
// A zero capacity yields 0.
func (s BatterySample) ChargePercent() float64 {
	if s.CapacityMAh == 0 {
		return 0
	}
	return float64(s.ChargeMAh) * 100 / float64(s.CapacityMAh)
}
