// internal/device/exchange.go
package device

import (
	"fmt"

	"github.com/tamzrod/keyer-test/internal/timeline"
)

// Exchange performs exactly one measurement exchange:
// window, events, capture, log.
// All-or-nothing: any failure aborts the exchange and no records are returned.
func Exchange(ch Channel, window int, events []timeline.Record) ([]timeline.Record, error) {
	if len(events) == 0 {
		return nil, ErrEmptyProgram
	}

	if err := ch.ConfigureWindow(window); err != nil {
		return nil, fmt.Errorf("device: configure window: %w", err)
	}
	if err := ch.SubmitEvents(events); err != nil {
		return nil, fmt.Errorf("device: submit events: %w", err)
	}
	if err := ch.BeginCapture(); err != nil {
		return nil, fmt.Errorf("device: begin capture: %w", err)
	}

	log, err := ch.FetchLog(timeline.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("device: fetch log: %w", err)
	}

	// Commit only if every step succeeded
	return log, nil
}
