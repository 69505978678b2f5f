// internal/device/builder.go
package device

import (
	"time"

	cfg "github.com/tamzrod/keyer-test/internal/config"
	"github.com/tamzrod/keyer-test/internal/device/arduino"
	"github.com/tamzrod/keyer-test/internal/device/sim"
)

// Build constructs the rig named by the config and returns its closer.
// The connection is opened once (fail fast at startup); there is no
// reconnect: a dead link ends the session.
func Build(d cfg.DeviceConfig) (Device, func() error, error) {
	if d.Simulate {
		rig, err := sim.New(sim.Config{
			DitTicks:   d.Sim.DitTicks,
			DitLatency: d.Sim.DitLatency,
			DahLatency: d.Sim.DahLatency,
			Wiring:     sim.WiringAuto,
		})
		if err != nil {
			return nil, nil, err
		}
		return rig, rig.Close, nil
	}

	client, err := arduino.Open(arduino.Config{
		Port:     d.Port,
		BaudRate: d.BaudRate,
		Timeout:  time.Duration(d.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
