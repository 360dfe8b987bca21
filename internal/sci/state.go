// internal/sci/state.go
package sci

import "fmt"

// Charging state codes reported by packet 21.
const (
	StateNotCharging            uint8 = 0
	StateReconditioningCharging uint8 = 1
	StateFullCharging           uint8 = 2
	StateTrickleCharging        uint8 = 3
	StateWaiting                uint8 = 4
	StateChargingFault          uint8 = 5
)

var stateNames = [...]string{
	StateNotCharging:            "Not charging",
	StateReconditioningCharging: "Reconditioning Charging",
	StateFullCharging:           "Full Charging",
	StateTrickleCharging:        "Trickle Charging",
	StateWaiting:                "Waiting",
	StateChargingFault:          "Charging Fault Condition",
}

const unknownStateName = "Unknown"

// ChargeState is the classified charging state.
// Codes outside 0-5 are kept as Unknown with the raw code preserved.
type ChargeState struct {
	code uint8
}

// Classify maps any byte value to a ChargeState. It is total.
func Classify(code uint8) ChargeState {
	return ChargeState{code: code}
}

// Code returns the raw state byte.
func (c ChargeState) Code() uint8 { return c.code }

// Known reports whether the code is one of the documented states.
func (c ChargeState) Known() bool {
	return int(c.code) < len(stateNames)
}

// Name returns the display name, "Unknown" for undocumented codes.
func (c ChargeState) Name() string {
	if !c.Known() {
		return unknownStateName
	}
	return stateNames[c.code]
}

func (c ChargeState) String() string {
	if !c.Known() {
		return fmt.Sprintf("%s(%d)", unknownStateName, c.code)
	}
	return c.Name()
}
