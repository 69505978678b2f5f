// internal/timeline/record.go
// Package timeline implements the run-length event format exchanged with the
// keyer test rig: sparse event records, their expansion into a dense per-tick
// timeline, and the masked transition scan used to measure durations.
package timeline

import "fmt"

// Kind tags an event record.
type Kind uint8

const (
	// Set switches the signal lines to Value at Position.
	Set Kind = 0
	// ChangeReference marks a point whose Position is an offset relative to
	// the previous reference; following positions count from here.
	ChangeReference Kind = 1
)

func (k Kind) String() string {
	switch k {
	case Set:
		return "SET"
	case ChangeReference:
		return "CHGSTS"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Record is one state-change event.
type Record struct {
	Position int
	Value    uint8
	Kind     Kind
}

func (r Record) String() string {
	return fmt.Sprintf("(%d,0x%02x,%s)", r.Position, r.Value, r.Kind)
}

// ---- LIMITS ----

// MaxEntries bounds every sparse sequence (one-byte count on the wire).
const MaxEntries = 256

// MaxPosition is the largest encodable position.
const MaxPosition = 0xFFFF

// Unmeasured fills interval slots that were not observed in the window.
const Unmeasured = -1
