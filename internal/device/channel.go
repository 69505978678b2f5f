// internal/device/channel.go
// Package device drives the test rig: one stimulus program in, one captured
// log out.
package device

import "github.com/tamzrod/keyer-test/internal/timeline"

// Channel abstracts the rig operations needed by a measurement.
// Implementations: arduino.Client (hardware), sim.Rig (simulator).
type Channel interface {
	// ConfigureWindow sets the capture length in ticks.
	ConfigureWindow(maxPos int) error
	// SubmitEvents loads the stimulus program (1..256 records).
	SubmitEvents(events []timeline.Record) error
	// BeginCapture runs the program and records input transitions.
	BeginCapture() error
	// FetchLog returns the recorded transitions, at most capacity of them.
	FetchLog(capacity int) ([]timeline.Record, error)
}

// Pinger is the readiness ping.
type Pinger interface {
	Ping() error
}

// Device is a Channel that can be polled for readiness.
type Device interface {
	Channel
	Pinger
}
