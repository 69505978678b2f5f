// internal/measure/length.go
package measure

import (
	"context"
	"errors"
	"fmt"

	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/stimulus"
)

// LengthResults is the number of intervals a length run must capture.
const LengthResults = 8

// MeasureLengths measures the dit and dah element lengths of the keyer.
// Baselines are replaced only when both relays measure.
func (s *Session) MeasureLengths(ctx context.Context) error {
	s.printf("* dit/dah length\n")

	ditOn, ditOff, err := s.length(ctx, keyer.Dit)
	if err != nil {
		s.reportLengthFailure(keyer.Dit, err)
		return err
	}
	dahOn, dahOff, err := s.length(ctx, keyer.Dah)
	if err != nil {
		s.reportLengthFailure(keyer.Dah, err)
		return err
	}

	s.Baselines = keyer.Baselines{DitOn: ditOn, DitOff: ditOff, DahOn: dahOn, DahOff: dahOff}
	s.reportLengths()
	return nil
}

// length holds one paddle for a full window and averages the element
// intervals it produced.
func (s *Session) length(ctx context.Context, r keyer.Relay) (on, off int, err error) {
	p, err := stimulus.Length(r.Mask())
	if err != nil {
		return 0, 0, err
	}

	u, n, err := s.intervals(ctx, p, LengthResults)
	if err != nil {
		return 0, 0, err
	}
	if n < LengthResults {
		return 0, 0, fmt.Errorf("%s: %d of %d intervals: %w", r, n, LengthResults, ErrTooLong)
	}

	var ons, offs []int
	for i := 0; i < LengthResults; i += 2 {
		ons = append(ons, u[i])
		offs = append(offs, u[i+1])
	}
	return average(ons), average(offs), nil
}

func (s *Session) reportLengthFailure(r keyer.Relay, err error) {
	if errors.Is(err, ErrTooLong) {
		s.printf("%s too long\n", r)
	}
}

func (s *Session) reportLengths() {
	b := s.Baselines
	dt, ht := b.DitTotal(), b.DahTotal()

	s.printf("dit: on=%d, off=%d, on/off=%.3f\n", b.DitOn, b.DitOff, ratio(b.DitOn, b.DitOff))
	s.printf("dah: on=%d, off=%d, on/off=%.3f\n", b.DahOn, b.DahOff, ratio(b.DahOn, b.DahOff))
	s.printf("dah/dit: %.3f\n", ratio(b.DahOn, b.DitOn))

	s.printf("dit: total=%d, total/on=%.3f, total/off=%.3f\n", dt, ratio(dt, b.DitOn), ratio(dt, b.DitOff))
	s.printf("dah: total=%d, total/on=%.3f, total/off=%.3f\n", ht, ratio(ht, b.DahOn), ratio(ht, b.DahOff))
	s.printf("dah total/dit total=%.3f\n", ratio(ht, dt))
}

func ratio(a, b int) float64 {
	return float64(a) / float64(b)
}
