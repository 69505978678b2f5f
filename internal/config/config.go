// internal/config/config.go
package config

import "github.com/tamzrod/keyer-test/internal/keyer"

type Config struct {
	Device      DeviceConfig      `yaml:"device"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Session     SessionConfig     `yaml:"session"`
	Log         LogConfig         `yaml:"log"`
	Status      *StatusConfig     `yaml:"status"` // optional
}

// ---- DEVICE ----

type DeviceConfig struct {
	Port            string `yaml:"port"` // serial path or tcp://host:port
	BaudRate        int    `yaml:"baud_rate"`
	TimeoutMs       int    `yaml:"timeout_ms"`
	ReadyAttempts   int    `yaml:"ready_attempts"`
	ReadyIntervalMs int    `yaml:"ready_interval_ms"`

	// Simulate replaces the rig with the built-in simulator.
	Simulate bool      `yaml:"simulate"`
	Sim      SimConfig `yaml:"sim"`
}

type SimConfig struct {
	DitTicks   int           `yaml:"dit_ticks"`
	DitLatency keyer.Latency `yaml:"dit_latency"`
	DahLatency keyer.Latency `yaml:"dah_latency"`
}

// ---- CALIBRATION STORE ----

type CalibrationConfig struct {
	File string `yaml:"file"`
}

// ---- SESSION ----

type SessionConfig struct {
	Verbose  bool `yaml:"verbose"`
	SettleMs int  `yaml:"settle_ms"` // pause between procedures of "run all"
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // auto | json | console
}

// ---- STATUS BLOCK (Modbus) ----

type StatusConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	DeviceName string `yaml:"device_name"`
}
