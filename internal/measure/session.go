// internal/measure/session.go
// Package measure runs stimulus programs against the rig and interprets the
// captured logs: relay calibration, element lengths and keying sweeps.
package measure

import (
	"context"
	"fmt"
	"io"

	"github.com/tamzrod/keyer-test/internal/device"
	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/logger"
	"github.com/tamzrod/keyer-test/internal/stimulus"
	"github.com/tamzrod/keyer-test/internal/timeline"
)

// Session is one interactive measurement session.
// It is not safe for concurrent use.
type Session struct {
	ch  device.Channel
	log logger.Logger
	out io.Writer

	// tl is reused by every round-trip.
	tl timeline.Timeline

	Calibration keyer.Calibration
	Baselines   keyer.Baselines

	// Verbose reports every sweep step instead of changes only.
	Verbose bool
}

// NewSession creates a session over ch. Reports go to out, diagnostics to log.
func NewSession(ch device.Channel, log logger.Logger, out io.Writer, cal keyer.Calibration) *Session {
	if log == nil {
		log = logger.Discard()
	}
	if out == nil {
		out = io.Discard
	}
	return &Session{
		ch:          ch,
		log:         log,
		out:         out,
		tl:          make(timeline.Timeline, keyer.MaxWindow),
		Calibration: cal,
	}
}

// run submits one program and returns the decoded capture. A cancelled ctx
// stops before the rig is touched.
// The returned timeline aliases the session buffer and is valid until the
// next run.
func (s *Session) run(ctx context.Context, p stimulus.Program) (timeline.Timeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Window <= 0 || p.Window > len(s.tl) {
		return nil, fmt.Errorf("measure: window %#x out of range", p.Window)
	}

	log, err := device.Exchange(s.ch, p.Window, p.Events)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	tl := s.tl[:p.Window]
	timeline.DecodeInto(tl, log)

	s.log.Debug("capture decoded", "window", p.Window, "events", len(p.Events), "log_entries", len(log))
	return tl, nil
}

// intervals runs p and extracts up to maxIntervals output intervals.
func (s *Session) intervals(ctx context.Context, p stimulus.Program, maxIntervals int) ([]int, int, error) {
	tl, err := s.run(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	u, n := timeline.ExtractIntervals(tl, len(tl), maxIntervals)
	s.log.Debug("intervals", "measured", n, "u", u)
	return u, n, nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
