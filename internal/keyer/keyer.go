// internal/keyer/keyer.go
// Package keyer holds the signal-line layout and timing value types shared
// by the stimulus programs, the device adapters and the measurement engine.
package keyer

// ---- SIGNAL LINES ----

// Relay lines driven by the test rig (paddle contacts).
const (
	DitBit uint8 = 0x01
	DahBit uint8 = 0x02
)

// OutBit is the keyer output line as sampled by the rig.
const OutBit uint8 = 0x01

// MaxWindow is the largest capture window used by any procedure, in ticks.
const MaxWindow = 0x8000

// ---- RELAYS ----

// Relay identifies one of the two paddle relays.
type Relay int

const (
	Dit Relay = iota
	Dah
)

// Mask returns the signal line driven by the relay.
func (r Relay) Mask() uint8 {
	if r == Dah {
		return DahBit
	}
	return DitBit
}

func (r Relay) String() string {
	if r == Dah {
		return "dah"
	}
	return "dit"
}

// ---- CALIBRATION ----

// Latency is the delay, in ticks, between a commanded relay change and its
// effect on the observed line.
type Latency struct {
	On  int `yaml:"on"`
	Off int `yaml:"off"`
}

// Calibration holds the measured latencies of both relays.
type Calibration struct {
	Dit Latency `yaml:"dit"`
	Dah Latency `yaml:"dah"`
}

// For returns the latency of one relay.
func (c Calibration) For(r Relay) Latency {
	if r == Dah {
		return c.Dah
	}
	return c.Dit
}

// ---- BASELINES ----

// Baselines are the measured element lengths of the keyer under test.
type Baselines struct {
	DitOn  int
	DitOff int
	DahOn  int
	DahOff int
}

func (b Baselines) DitTotal() int { return b.DitOn + b.DitOff }
func (b Baselines) DahTotal() int { return b.DahOn + b.DahOff }

// Valid reports whether the baselines can drive a sweep.
func (b Baselines) Valid() bool {
	return b.DitOn > 0 && b.DitOff > 0 && b.DahOn > 0 && b.DahOff > 0
}
