// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/keyer-test/internal/status"
)

// statusWriter writes the keyer test status block.
type statusWriter struct {
	plan StatusPlan
	cli  endpointClient

	needFull bool
	last     []uint16 // live slots as last delivered
	nameRegs []uint16
}

// NewStatusWriter builds a status writer over one endpoint client.
func NewStatusWriter(plan StatusPlan, cli endpointClient) (*statusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}

	return &statusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		nameRegs: encodeDeviceNameRegs(plan.DeviceName),
	}, nil
}

// WriteStatus delivers a snapshot into status memory.
// The first write, and the first write after any failure, re-asserts the
// full block; otherwise only runs of changed live slots are written.
func (sw *statusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil {
		return errors.New("status writer: disabled")
	}

	regs := status.Encode(s)
	base := sw.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		copy(regs[status.SlotDeviceNameStart:status.SlotDeviceNameEnd+1], sw.nameRegs)

		if err := sw.cli.WriteRegisters(sw.plan.UnitID, base, regs); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = append(sw.last[:0], regs[:status.SlotLiveEnd+1]...)
		return nil
	}

	var errs []string

	for start := 0; start <= status.SlotLiveEnd; {
		if regs[start] == sw.last[start] {
			start++
			continue
		}
		end := start
		for end+1 <= status.SlotLiveEnd && regs[end+1] != sw.last[end+1] {
			end++
		}

		run := regs[start : end+1]
		if err := sw.cli.WriteRegisters(sw.plan.UnitID, base+uint16(start), run); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", start, end, err))
		} else {
			copy(sw.last[start:end+1], run)
		}
		start = end + 1
	}

	if len(errs) > 0 {
		// Any partial failure: re-assert the full block on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *statusWriter) baseAddr() uint16 {
	// Each rig owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}

// encodeDeviceNameRegs packs up to 16 ASCII characters into 8 registers,
// two bytes per register, big-endian.
func encodeDeviceNameRegs(name string) []uint16 {
	out := make([]uint16, status.SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > status.DeviceNameMaxChars {
		b = b[:status.DeviceNameMaxChars]
	}

	for i := 0; i < len(b); i += 2 {
		hi := printable(b[i])
		var lo byte
		if i+1 < len(b) {
			lo = printable(b[i+1])
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

func printable(c byte) byte {
	if c < 0x20 || c > 0x7E {
		return '?'
	}
	return c
}
