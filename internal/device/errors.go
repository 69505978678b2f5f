// internal/device/errors.go
package device

import "errors"

var (
	// ErrNotReady indicates the rig never answered the readiness ping.
	ErrNotReady = errors.New("device: not ready")

	// ErrEmptyProgram indicates an exchange without stimulus records.
	ErrEmptyProgram = errors.New("device: empty event program")
)
