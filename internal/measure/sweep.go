// internal/measure/sweep.go
package measure

import (
	"context"

	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/stimulus"
)

// Interval counts captured per sweep step.
const (
	SweepResults   = 8
	SqueezeResults = 10
)

// Sweep geometry, as divisors of the dit period.
const (
	offsetDiv = 16
	widthDiv  = 8
	stepDiv   = 4
)

// sweepRun is one pass of a sweep: A leads, B (if any) joins at each offset.
type sweepRun struct {
	format  string
	mode    stimulus.Mode
	a       keyer.Relay
	b       keyer.Relay
	solo    bool // no B contact
	limit   func(keyer.Baselines) int
	results int
}

func ditLimit(b keyer.Baselines) int  { return b.DitTotal() }
func dahLimit(b keyer.Baselines) int  { return b.DahTotal() }
func bothLimit(b keyer.Baselines) int { return b.DitTotal() + b.DahTotal() }

// Simple checks single-paddle timing: one paddle closed for a short pulse at
// increasing offsets into the first element.
func (s *Session) Simple(ctx context.Context) error {
	s.printf("* simple\n")
	return s.sweep(ctx,
		sweepRun{"dit 1-%2d/%2d\t%s\n", stimulus.Memory, keyer.Dit, keyer.Dah, true, ditLimit, SweepResults},
		sweepRun{"dah 1-%2d/%2d\t%s\n", stimulus.Memory, keyer.Dah, keyer.Dit, true, dahLimit, SweepResults},
	)
}

// Memory checks dit/dah memory: the opposite paddle taps during the element.
func (s *Session) Memory(ctx context.Context) error {
	s.printf("* dit/dah memory\n")
	return s.sweep(ctx,
		sweepRun{"dit on, dah %2d/%2d\t%s\n", stimulus.Memory, keyer.Dit, keyer.Dah, false, ditLimit, SweepResults},
		sweepRun{"dah on, dit %2d/%2d\t%s\n", stimulus.Memory, keyer.Dah, keyer.Dit, false, dahLimit, SweepResults},
	)
}

// Squeeze checks iambic squeeze: both paddles closed, released together at
// increasing offsets.
func (s *Session) Squeeze(ctx context.Context) error {
	s.printf("* squeeze\n")
	return s.sweep(ctx,
		sweepRun{"dit + dah %2d/%2d\t%s\n", stimulus.Squeeze, keyer.Dit, keyer.Dah, false, bothLimit, SqueezeResults},
		sweepRun{"dah + dit %2d/%2d\t%s\n", stimulus.Squeeze, keyer.Dah, keyer.Dit, false, bothLimit, SqueezeResults},
	)
}

func (s *Session) sweep(ctx context.Context, runs ...sweepRun) error {
	if !s.Baselines.Valid() || s.Baselines.DitTotal() < stepDiv {
		return ErrNoBaseline
	}
	for _, r := range runs {
		if err := s.sweepOne(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// sweepOne steps the release offset across twice the run's limit. A line is
// reported when the result changes, or on every step when verbose.
func (s *Session) sweepOne(ctx context.Context, r sweepRun) error {
	dt := s.Baselines.DitTotal()
	offset, width, step := dt/offsetDiv, dt/widthDiv, dt/stepDiv
	limit := r.limit(s.Baselines)

	prev := ""
	for n, i := 1, offset; i < 2*limit; n, i = n+1, i+step {
		got, err := s.trial(ctx, r, i, width)
		if err != nil {
			if isProgramError(err) {
				s.log.Warn("sweep step skipped", "offset", i, "width", width, "error", err)
				continue
			}
			return err
		}

		if !s.Verbose && got == prev {
			continue
		}
		prev = got
		s.printf(r.format, n, limit/step, got)
	}
	return nil
}

// trial runs one dual-contact program and classifies the resulting elements.
func (s *Session) trial(ctx context.Context, r sweepRun, offset, width int) (string, error) {
	params := stimulus.DualParams{
		Mode:   r.mode,
		A:      stimulus.SignalFor(r.a, s.Calibration),
		Offset: offset,
		Width:  width,
	}
	if !r.solo {
		params.B = stimulus.SignalFor(r.b, s.Calibration)
	}

	p, err := stimulus.Dual(params)
	if err != nil {
		return "", err
	}

	u, _, err := s.intervals(ctx, p, r.results)
	if err != nil {
		return "", err
	}
	return glyphs(u, s.Baselines.DitTotal()), nil
}
