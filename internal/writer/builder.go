// internal/writer/builder.go
package writer

import (
	"time"

	cfg "github.com/tamzrod/keyer-test/internal/config"
	wmodbus "github.com/tamzrod/keyer-test/internal/writer/modbus"
)

// BuildStatusWriter connects to the status endpoint and returns the writer
// with its closer. A nil config means status export is disabled: the
// returned writer is nil and the closer is a no-op.
func BuildStatusWriter(s *cfg.StatusConfig) (StatusWriter, func() error, error) {
	if s == nil {
		return nil, func() error { return nil }, nil
	}

	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: s.Endpoint,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	sw, err := NewStatusWriter(StatusPlan{
		Endpoint:   s.Endpoint,
		UnitID:     s.UnitID,
		BaseSlot:   s.BaseSlot,
		DeviceName: s.DeviceName,
	}, c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return sw, c.Close, nil
}
