// internal/device/sim/sim.go
// Package sim is a simulated test rig with an iambic keyer attached.
// It implements the device channel without hardware, for dry runs and tests.
package sim

import (
	"errors"
	"fmt"

	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/timeline"
)

// Wiring selects what the rig's input lines observe.
type Wiring int

const (
	// WiringAuto observes the relay contacts for calibration-sized windows
	// and the keyer output otherwise.
	WiringAuto Wiring = iota
	// WiringKeyer observes the keyer output on keyer.OutBit.
	WiringKeyer
	// WiringLoopback observes the relay contacts directly.
	WiringLoopback
)

// calibWindowMax is the largest window treated as a calibration run under
// WiringAuto.
const calibWindowMax = 0x2000

// Config describes the simulated hardware.
type Config struct {
	// DitTicks is the keyer's dit length; a dah is three dits, the element
	// gap one dit.
	DitTicks   int
	DitLatency keyer.Latency
	DahLatency keyer.Latency
	Wiring     Wiring
}

var (
	ErrNoProgram = errors.New("sim: no event program submitted")
	ErrNoCapture = errors.New("sim: no capture recorded")
	ErrWindow    = errors.New("sim: invalid capture window")
)

// Rig is the simulated device.
type Rig struct {
	cfg     Config
	window  int
	program []timeline.Record
	log     []timeline.Record
}

func New(cfg Config) (*Rig, error) {
	if cfg.DitTicks <= 0 {
		return nil, fmt.Errorf("sim: dit ticks must be > 0, got %d", cfg.DitTicks)
	}
	for _, l := range []keyer.Latency{cfg.DitLatency, cfg.DahLatency} {
		if l.On < 0 || l.Off < 0 {
			return nil, fmt.Errorf("sim: negative relay latency %+v", l)
		}
	}
	return &Rig{cfg: cfg}, nil
}

// Ping always succeeds.
func (r *Rig) Ping() error { return nil }

func (r *Rig) Close() error { return nil }

func (r *Rig) ConfigureWindow(maxPos int) error {
	if maxPos < 256 || maxPos > 0x10000 || maxPos%256 != 0 {
		return fmt.Errorf("%w: %d", ErrWindow, maxPos)
	}
	r.window = maxPos
	return nil
}

func (r *Rig) SubmitEvents(events []timeline.Record) error {
	if len(events) == 0 || len(events) > timeline.MaxEntries {
		return fmt.Errorf("sim: invalid event count %d", len(events))
	}
	r.program = append(r.program[:0], events...)
	r.log = nil
	return nil
}

func (r *Rig) BeginCapture() error {
	if len(r.program) == 0 {
		return ErrNoProgram
	}
	if r.window == 0 {
		return fmt.Errorf("%w: not configured", ErrWindow)
	}
	r.log = r.run()
	return nil
}

func (r *Rig) FetchLog(capacity int) ([]timeline.Record, error) {
	if r.log == nil {
		return nil, ErrNoCapture
	}
	if len(r.log) > capacity {
		return nil, fmt.Errorf("sim: log of %d entries exceeds capacity %d", len(r.log), capacity)
	}
	out := make([]timeline.Record, len(r.log))
	copy(out, r.log)
	return out, nil
}

// ---- simulation ----

type contactChange struct {
	at  int
	bit uint8
	on  bool
}

func (r *Rig) loopback() bool {
	switch r.cfg.Wiring {
	case WiringLoopback:
		return true
	case WiringKeyer:
		return false
	default:
		return r.window <= calibWindowMax
	}
}

func (r *Rig) latency(bit uint8) keyer.Latency {
	if bit == keyer.DahBit {
		return r.cfg.DahLatency
	}
	return r.cfg.DitLatency
}

// run executes the program tick by tick and returns the sparse input log.
func (r *Rig) run() []timeline.Record {
	var (
		log      = make([]timeline.Record, 0, 16)
		pending  []contactChange
		cmd      uint8
		contacts uint8
		input    uint8
		base     int
		pi       int
		k        = newIambic(r.cfg.DitTicks)
		loop     = r.loopback()
	)

	emit := func(rec timeline.Record) {
		if len(log) < timeline.MaxEntries {
			log = append(log, rec)
		}
	}

	for t := 0; t < r.window; t++ {
		// commands due at this tick
		for pi < len(r.program) {
			e := r.program[pi]
			if e.Kind != timeline.Set || base+e.Position > t {
				break
			}
			for _, bit := range []uint8{keyer.DitBit, keyer.DahBit} {
				was, now := cmd&bit != 0, e.Value&bit != 0
				if was == now {
					continue
				}
				lat := r.latency(bit)
				d := lat.Off
				if now {
					d = lat.On
				}
				pending = append(pending, contactChange{at: t + d, bit: bit, on: now})
			}
			cmd = e.Value
			pi++
		}

		// relay contacts settle after their latency
		kept := pending[:0]
		for _, c := range pending {
			if c.at > t {
				kept = append(kept, c)
				continue
			}
			if c.on {
				contacts |= c.bit
			} else {
				contacts &^= c.bit
			}
		}
		pending = kept

		out := k.step(contacts)

		prev := input
		if loop {
			input = contacts
		} else {
			input = 0
			if out {
				input = keyer.OutBit
			}
		}
		if t == 0 || input != prev {
			emit(timeline.Record{Position: t, Value: input, Kind: timeline.Set})
		}

		// a reference marker waits for the input lines to match
		if pi < len(r.program) {
			e := r.program[pi]
			if e.Kind == timeline.ChangeReference && input&e.Value == e.Value {
				base = t + e.Position
				emit(timeline.Record{Position: e.Position, Value: input, Kind: timeline.ChangeReference})
				pi++
			}
		}
	}

	return log
}
