// internal/measure/calibrate.go
package measure

import (
	"context"
	"fmt"

	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/stimulus"
)

// CalibrationTrials is the number of single-pulse trials averaged per
// relay transition.
const CalibrationTrials = 4

type transition struct {
	relay keyer.Relay
	on    bool
}

func (t transition) String() string {
	if t.on {
		return t.relay.String() + " on"
	}
	return t.relay.String() + " off"
}

// calibrationOrder is the trial order within one round.
var calibrationOrder = [4]transition{
	{keyer.Dit, true},
	{keyer.Dit, false},
	{keyer.Dah, true},
	{keyer.Dah, false},
}

// Calibrate measures the on and off latency of both relays.
// The four constants are replaced together, and only when every trial
// observed its transition.
func (s *Session) Calibrate(ctx context.Context) error {
	var samples [4][]int

	for trial := 0; trial < CalibrationTrials; trial++ {
		for i, tr := range calibrationOrder {
			v, err := s.latency(ctx, tr)
			if err != nil {
				return fmt.Errorf("calibration %s: %w", tr, err)
			}
			samples[i] = append(samples[i], v)
		}
	}

	s.Calibration = keyer.Calibration{
		Dit: keyer.Latency{On: average(samples[0]), Off: average(samples[1])},
		Dah: keyer.Latency{On: average(samples[2]), Off: average(samples[3])},
	}
	s.LogCalibration()
	return nil
}

// LogCalibration prints the current constants at debug level.
func (s *Session) LogCalibration() {
	s.log.Debug("relay calibration",
		"dit_on", s.Calibration.Dit.On, "dit_off", s.Calibration.Dit.Off,
		"dah_on", s.Calibration.Dah.On, "dah_off", s.Calibration.Dah.Off)
}

// latency runs one single-pulse trial and returns the ticks between the
// commanded change and its observation.
func (s *Session) latency(ctx context.Context, tr transition) (int, error) {
	mask := tr.relay.Mask()

	p, err := stimulus.SinglePulse(mask, tr.on)
	if err != nil {
		return 0, err
	}
	tl, err := s.run(ctx, p)
	if err != nil {
		return 0, err
	}

	target := uint8(0)
	if tr.on {
		target = mask
	}

	rec, ok, _ := tl.Find(tl.From(stimulus.CalibStart), mask, target)
	if !ok {
		return 0, ErrNoTransition
	}
	return rec.Position - stimulus.CalibStart, nil
}

// average is the truncating arithmetic mean.
func average(v []int) int {
	if len(v) == 0 {
		return 0
	}
	sum := 0
	for _, x := range v {
		sum += x
	}
	return sum / len(v)
}
