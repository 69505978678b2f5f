// internal/stimulus/program.go
// Package stimulus builds the event programs submitted to the test rig.
// Every function here is pure: timing parameters in, sparse sequence out.
package stimulus

import (
	"fmt"

	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/timeline"
)

// ---- WINDOW GEOMETRY ----

const (
	// CalibWindow and CalibStart frame the single-pulse latency test.
	CalibWindow = 0x2000
	CalibStart  = 0x0800

	// DitDahWindow and DitDahStart frame the keyer tests.
	DitDahWindow = keyer.MaxWindow
	DitDahStart  = 0x2000
)

// Program is one stimulus ready for submission.
type Program struct {
	// Window is the capture length in ticks.
	Window int
	Events []timeline.Record
}

// SinglePulse drives one relay into the commanded state at CalibStart, from
// the opposite state at tick 0.
func SinglePulse(mask uint8, on bool) (Program, error) {
	from, to := mask, uint8(0)
	if on {
		from, to = 0, mask
	}

	b := timeline.NewBuilder()
	b.Append(0, from, timeline.Set)
	b.Append(CalibStart, to, timeline.Set)

	return finish(b, CalibWindow, "single pulse")
}

// Length holds one relay closed from DitDahStart until past the end of the
// window, so the keyer repeats its element for the whole capture.
func Length(mask uint8) (Program, error) {
	b := timeline.NewBuilder()
	b.Append(0, 0, timeline.Set)
	b.Append(DitDahStart, mask, timeline.Set)
	b.Append(0, keyer.OutBit, timeline.ChangeReference)
	b.Append(DitDahWindow-1, 0, timeline.Set)

	return finish(b, DitDahWindow, "length")
}

func finish(b *timeline.Builder, window int, name string) (Program, error) {
	events, err := b.Records()
	if err != nil {
		return Program{}, fmt.Errorf("stimulus: %s program: %w", name, err)
	}
	return Program{Window: window, Events: events}, nil
}
