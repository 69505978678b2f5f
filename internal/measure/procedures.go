// internal/measure/procedures.go
package measure

import (
	"context"
	"errors"
	"time"
)

// Procedure is one named measurement selectable from the menu.
type Procedure struct {
	Key  byte
	Name string
	Run  func(*Session, context.Context) error
}

// Procedures returns the measurement procedures in "run all" order.
func Procedures() []Procedure {
	return []Procedure{
		{Key: '0', Name: "check dit/dah length", Run: (*Session).MeasureLengths},
		{Key: '1', Name: "check simple timing", Run: (*Session).Simple},
		{Key: '2', Name: "check dit/dah memory", Run: (*Session).Memory},
		{Key: '3', Name: "check squeeze", Run: (*Session).Squeeze},
	}
}

// Lookup finds a procedure by menu key.
func Lookup(key byte) (Procedure, bool) {
	for _, p := range Procedures() {
		if p.Key == key {
			return p, true
		}
	}
	return Procedure{}, false
}

// RunHooks observe RunAll. Either may be nil.
type RunHooks struct {
	Before func(Procedure)
	After  func(Procedure, error)
}

// RunAll runs every procedure in order, pausing settle between them so the
// keyer returns to idle.
//
// A measurement failure is reported and the next procedure still runs; a
// transport failure or cancellation stops the sequence. The returned error
// joins every failure.
func (s *Session) RunAll(ctx context.Context, settle time.Duration, hooks RunHooks) error {
	var errs []error

	for i, p := range Procedures() {
		if i > 0 && settle > 0 {
			t := time.NewTimer(settle)
			select {
			case <-ctx.Done():
				t.Stop()
				return errors.Join(append(errs, ctx.Err())...)
			case <-t.C:
			}
		}

		if hooks.Before != nil {
			hooks.Before(p)
		}
		err := p.Run(s, ctx)
		if hooks.After != nil {
			hooks.After(p, err)
		}
		if err == nil {
			continue
		}

		s.log.Warn("procedure failed", "procedure", p.Name, "error", err)
		errs = append(errs, err)
		if errors.Is(err, ErrTransport) || ctx.Err() != nil {
			break
		}
	}

	return errors.Join(errs...)
}
