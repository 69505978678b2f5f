// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/keyer-test/internal/logger"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	d := cfg.Device
	if !d.Simulate && strings.TrimSpace(d.Port) == "" {
		return fmt.Errorf("device.port is required unless device.simulate is set")
	}
	if d.BaudRate < 0 {
		return fmt.Errorf("device.baud_rate must be >= 0, got %d", d.BaudRate)
	}
	if d.TimeoutMs < 0 {
		return fmt.Errorf("device.timeout_ms must be >= 0, got %d", d.TimeoutMs)
	}
	if d.ReadyAttempts < 0 {
		return fmt.Errorf("device.ready_attempts must be >= 0, got %d", d.ReadyAttempts)
	}
	if d.ReadyIntervalMs < 0 {
		return fmt.Errorf("device.ready_interval_ms must be >= 0, got %d", d.ReadyIntervalMs)
	}

	if d.Simulate {
		if d.Sim.DitTicks < 0 {
			return fmt.Errorf("device.sim.dit_ticks must be >= 0, got %d", d.Sim.DitTicks)
		}
		for name, l := range map[string]struct{ on, off int }{
			"dit_latency": {d.Sim.DitLatency.On, d.Sim.DitLatency.Off},
			"dah_latency": {d.Sim.DahLatency.On, d.Sim.DahLatency.Off},
		} {
			if l.on < 0 || l.off < 0 {
				return fmt.Errorf("device.sim.%s must not be negative", name)
			}
		}
	}

	// ------------------------------------------------------------
	// SESSION / LOG
	// ------------------------------------------------------------

	if cfg.Session.SettleMs < 0 {
		return fmt.Errorf("session.settle_ms must be >= 0, got %d", cfg.Session.SettleMs)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "auto", "json", "console":
	default:
		return fmt.Errorf("log.format must be auto, json or console, got %q", cfg.Log.Format)
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	if s := cfg.Status; s != nil {
		if strings.TrimSpace(s.Endpoint) == "" {
			return fmt.Errorf("status.endpoint is required when status is set")
		}
		if s.TimeoutMs < 0 {
			return fmt.Errorf("status.timeout_ms must be >= 0, got %d", s.TimeoutMs)
		}
		for i := 0; i < len(s.DeviceName); i++ {
			if s.DeviceName[i] > 0x7F {
				return fmt.Errorf("status.device_name must contain ASCII characters only")
			}
		}
	}

	return nil
}
