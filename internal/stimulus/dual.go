// internal/stimulus/dual.go
package stimulus

import (
	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/timeline"
)

// Signal is one paddle contact with its relay latency.
// A zero Mask means the signal is absent.
type Signal struct {
	Mask    uint8
	Latency keyer.Latency
}

// SignalFor returns the signal of a relay under the given calibration.
func SignalFor(r keyer.Relay, cal keyer.Calibration) Signal {
	return Signal{Mask: r.Mask(), Latency: cal.For(r)}
}

// Mode selects how the second contact joins the first.
type Mode int

const (
	// Memory closes B at Offset, after A has started its element.
	Memory Mode = iota
	// Squeeze closes A and B together right after the element starts.
	Squeeze
)

// DualParams describes a two-contact program. Offset and Width are in ticks
// from the start of A's first element.
type DualParams struct {
	Mode   Mode
	A      Signal
	B      Signal
	Offset int
	Width  int
}

// Dual builds a memory or squeeze program.
//
// Both contacts are released at Offset+Width, each compensated by its own
// off latency. When the compensated release times differ, the earlier one is
// released first and the later one follows.
func Dual(p DualParams) (Program, error) {
	a, bsig := p.A, p.B

	b := timeline.NewBuilder()
	b.Append(0, 0, timeline.Set)
	b.Append(DitDahStart, a.Mask, timeline.Set)
	b.Append(0, keyer.OutBit, timeline.ChangeReference)

	switch p.Mode {
	case Squeeze:
		b.Append(1, a.Mask|bsig.Mask, timeline.Set)
	default:
		b.Append(1, a.Mask, timeline.Set)
		if bsig.Mask != 0 {
			b.Append(p.Offset-bsig.Latency.On, a.Mask|bsig.Mask, timeline.Set)
		}
	}

	t0 := p.Offset + p.Width - a.Latency.Off
	t1 := p.Offset + p.Width - bsig.Latency.Off

	var hold uint8
	switch {
	case bsig.Mask == 0 || t0 == t1:
		// released together
	case t0 < t1:
		hold = bsig.Mask
	default:
		hold = a.Mask
		t0, t1 = t1, t0
	}

	b.Append(t0, hold, timeline.Set)
	if hold != 0 {
		b.Append(t1, 0, timeline.Set)
	}

	name := "memory"
	if p.Mode == Squeeze {
		name = "squeeze"
	}
	return finish(b, DitDahWindow, name)
}
