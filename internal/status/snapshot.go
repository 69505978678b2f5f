// internal/status/snapshot.go
package status

import "github.com/tamzrod/keyer-test/internal/keyer"

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health        uint16
	LastErrorCode uint16
	Completed     uint16

	Calibration keyer.Calibration
	Baselines   keyer.Baselines
}
