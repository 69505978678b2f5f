// internal/config/normalize.go
package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultBaudRate        = 38400
	DefaultTimeoutMs       = 5000
	DefaultReadyAttempts   = 10
	DefaultReadyIntervalMs = 1000
	DefaultSettleMs        = 2000
	DefaultCalibrationFile = "keyer-test.yaml"
	DefaultSimDitTicks     = 600
	DefaultStatusTimeoutMs = 1000

	deviceNameMaxChars = 16
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Device
	if d.BaudRate == 0 {
		d.BaudRate = DefaultBaudRate
	}
	if d.TimeoutMs == 0 {
		d.TimeoutMs = DefaultTimeoutMs
	}
	if d.ReadyAttempts == 0 {
		d.ReadyAttempts = DefaultReadyAttempts
	}
	if d.ReadyIntervalMs == 0 {
		d.ReadyIntervalMs = DefaultReadyIntervalMs
	}
	if d.Simulate && d.Sim.DitTicks == 0 {
		d.Sim.DitTicks = DefaultSimDitTicks
	}

	if strings.TrimSpace(cfg.Calibration.File) == "" {
		cfg.Calibration.File = DefaultCalibrationFile
	}

	if cfg.Session.SettleMs == 0 {
		cfg.Session.SettleMs = DefaultSettleMs
	}

	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if cfg.Log.Format == "" {
		cfg.Log.Format = "auto"
	}

	if s := cfg.Status; s != nil {
		if s.TimeoutMs == 0 {
			s.TimeoutMs = DefaultStatusTimeoutMs
		}
		// ASCII already validated; the status block holds 16 characters
		if len(s.DeviceName) > deviceNameMaxChars {
			s.DeviceName = s.DeviceName[:deviceNameMaxChars]
		}
	}
}
