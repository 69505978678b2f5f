// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
device:
  port: /dev/ttyUSB0
  timeout_ms: 3000
calibration:
  file: cal.yaml
session:
  verbose: true
log:
  level: debug
status:
  endpoint: 127.0.0.1:502
  unit_id: 3
  device_name: KEYER-BENCH-NUMBER-ONE
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	assert.Equal(t, "/dev/ttyUSB0", cfg.Device.Port)
	assert.Equal(t, DefaultBaudRate, cfg.Device.BaudRate)
	assert.Equal(t, 3000, cfg.Device.TimeoutMs)
	assert.Equal(t, DefaultReadyAttempts, cfg.Device.ReadyAttempts)
	assert.Equal(t, "cal.yaml", cfg.Calibration.File)
	assert.True(t, cfg.Session.Verbose)
	assert.Equal(t, DefaultSettleMs, cfg.Session.SettleMs)
	assert.Equal(t, "auto", cfg.Log.Format)

	require.NotNil(t, cfg.Status)
	assert.Equal(t, uint8(3), cfg.Status.UnitID)
	assert.Equal(t, "KEYER-BENCH-NUMB", cfg.Status.DeviceName)
	assert.Equal(t, DefaultStatusTimeoutMs, cfg.Status.TimeoutMs)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("device:\n  prot: /dev/ttyS0\n"))
	assert.Error(t, err)
}

func TestNormalize_SimDefaults(t *testing.T) {
	cfg, err := Parse([]byte("device:\n  simulate: true\n"))
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	assert.Equal(t, DefaultSimDitTicks, cfg.Device.Sim.DitTicks)
	assert.Equal(t, DefaultCalibrationFile, cfg.Calibration.File)
	assert.Nil(t, cfg.Status)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		ok   bool
	}{
		{"port required", "device: {}", false},
		{"simulate without port", "device: {simulate: true}", true},
		{"negative timeout", "device: {port: /dev/ttyS0, timeout_ms: -1}", false},
		{"negative attempts", "device: {port: /dev/ttyS0, ready_attempts: -2}", false},
		{"negative sim latency", "device: {simulate: true, sim: {dit_latency: {on: -1}}}", false},
		{"bad level", "device: {port: x}\nlog: {level: loud}", false},
		{"bad format", "device: {port: x}\nlog: {format: xml}", false},
		{"console format", "device: {port: x}\nlog: {format: Console}", true},
		{"negative settle", "device: {port: x}\nsession: {settle_ms: -5}", false},
		{"status needs endpoint", "device: {port: x}\nstatus: {unit_id: 1}", false},
		{"status non-ascii name", "device: {port: x}\nstatus: {endpoint: 'h:502', device_name: 'Ключ'}", false},
		{"status ok", "device: {port: x}\nstatus: {endpoint: 'h:502'}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			err = Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
