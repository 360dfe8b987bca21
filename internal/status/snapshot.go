// internal/status/snapshot.go
package status

// LiveSlots is the number of status slots that change between cycles.
const LiveSlots = SlotSecondsInError + 1

// Snapshot is the live part of a device status block.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16
}

// Live returns the snapshot in slot order.
func (s Snapshot) Live() [LiveSlots]uint16 {
	return [LiveSlots]uint16{
		SlotHealthCode:     s.Health,
		SlotLastErrorCode:  s.LastErrorCode,
		SlotSecondsInError: s.SecondsInError,
	}
}
