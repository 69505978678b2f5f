// internal/timeline/errors.go
package timeline

import "errors"

var (
	// ErrBufferFull indicates a sparse sequence would exceed MaxEntries.
	ErrBufferFull = errors.New("timeline: sparse sequence full")

	// ErrPositionRange indicates a position outside [0, MaxPosition].
	ErrPositionRange = errors.New("timeline: position out of range")

	// ErrPositionOrder indicates a position that does not advance past the
	// previous one within the current reference segment.
	ErrPositionOrder = errors.New("timeline: position not increasing")
)
