// internal/device/arduino/protocol.go
package arduino

import (
	"encoding/binary"
	"fmt"

	"github.com/tamzrod/keyer-test/internal/timeline"
)

// ---- COMMANDS ----
// One byte each. Every command is answered by respACK once executed.

const (
	cmdReady  byte = 'R'
	cmdMaxPos byte = 'M'
	cmdEvent  byte = 'E'
	cmdLog    byte = 'L'
	cmdResult byte = 'G'

	respACK byte = 0x06
)

// ---- RECORD LAYOUT ----
//
//	0-1  position (uint16, little-endian)
//	2    value (signal bitmask)
//	3    kind (0 = set, 1 = change reference)

const recordSize = 4

// ---- WINDOW ----

const (
	windowUnit = 256
	minWindow  = windowUnit
	maxWindow  = 0x10000
)

// maxAckDiscard bounds the bytes skipped while waiting for an ACK.
const maxAckDiscard = 1024

func encodeRecords(events []timeline.Record) []byte {
	out := make([]byte, len(events)*recordSize)
	for i, e := range events {
		b := out[i*recordSize:]
		binary.LittleEndian.PutUint16(b[0:2], uint16(e.Position))
		b[2] = e.Value
		b[3] = byte(e.Kind)
	}
	return out
}

func decodeRecords(data []byte) ([]timeline.Record, error) {
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("%w: record payload of %d bytes", ErrProtocol, len(data))
	}

	out := make([]timeline.Record, len(data)/recordSize)
	for i := range out {
		b := data[i*recordSize:]
		kind := timeline.Kind(b[3])
		if kind != timeline.Set && kind != timeline.ChangeReference {
			return nil, fmt.Errorf("%w: record %d has kind %d", ErrProtocol, i, b[3])
		}
		out[i] = timeline.Record{
			Position: int(binary.LittleEndian.Uint16(b[0:2])),
			Value:    b[2],
			Kind:     kind,
		}
	}
	return out, nil
}

// windowByte encodes a capture window as sent with cmdMaxPos.
func windowByte(maxPos int) (byte, error) {
	if maxPos < minWindow || maxPos > maxWindow || maxPos%windowUnit != 0 {
		return 0, fmt.Errorf("%w: %d (want multiple of %d in [%d, %d])",
			ErrWindow, maxPos, windowUnit, minWindow, maxWindow)
	}
	return byte(maxPos>>8 - 1), nil
}
