// internal/device/arduino/errors.go
package arduino

import "errors"

var (
	// ErrTimeout indicates the rig did not answer within the configured timeout.
	ErrTimeout = errors.New("arduino: timeout")

	// ErrNotReady indicates the rig answered the readiness ping with something
	// other than ACK.
	ErrNotReady = errors.New("arduino: device not ready")

	// ErrProtocol indicates a malformed or unexpected reply.
	ErrProtocol = errors.New("arduino: protocol error")

	// ErrWindow indicates a capture window the firmware cannot encode.
	ErrWindow = errors.New("arduino: invalid capture window")

	// ErrEventCount indicates an event program outside [1, 256] records.
	ErrEventCount = errors.New("arduino: invalid event count")

	// ErrClosed indicates use of a closed client.
	ErrClosed = errors.New("arduino: not connected")
)
