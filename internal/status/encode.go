// internal/status/encode.go
package status

// Encode converts a Snapshot into a full status block.
// Name slots are left zero; the writer owns the device name.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotCompleted] = s.Completed

	regs[SlotCalibDitOn] = clamp(s.Calibration.Dit.On)
	regs[SlotCalibDitOff] = clamp(s.Calibration.Dit.Off)
	regs[SlotCalibDahOn] = clamp(s.Calibration.Dah.On)
	regs[SlotCalibDahOff] = clamp(s.Calibration.Dah.Off)

	regs[SlotDitOn] = clamp(s.Baselines.DitOn)
	regs[SlotDitOff] = clamp(s.Baselines.DitOff)
	regs[SlotDahOn] = clamp(s.Baselines.DahOn)
	regs[SlotDahOff] = clamp(s.Baselines.DahOff)

	return regs
}

// clamp maps a tick count onto one register. Values MUST NOT wrap.
func clamp(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(v)
	}
}
