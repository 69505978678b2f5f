// internal/status/constants.go
package status

// Keyer test status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per rig.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the session health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the code of the last failed procedure (0 = none).
const SlotLastErrorCode = 1

// SlotCompleted counts procedures completed since start. It saturates.
const SlotCompleted = 2

// Slots 3..6: relay latency calibration, in ticks.
const (
	SlotCalibDitOn  = 3
	SlotCalibDitOff = 4
	SlotCalibDahOn  = 5
	SlotCalibDahOff = 6
)

// Slots 7..10: measured element lengths, in ticks.
const (
	SlotDitOn  = 7
	SlotDitOff = 8
	SlotDahOn  = 9
	SlotDahOff = 10
)

// SlotLiveEnd is the last slot rewritten incrementally (inclusive).
const SlotLiveEnd = SlotDahOff

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
// Slot 19 is reserved.
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state, before any procedure ran.
const HealthUnknown uint16 = 0

// HealthOK means the last procedure completed.
const HealthOK uint16 = 1

// HealthError means the last procedure failed.
const HealthError uint16 = 2

// HealthBusy means a procedure is running.
const HealthBusy uint16 = 3
