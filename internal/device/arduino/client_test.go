// internal/device/arduino/client_test.go
package arduino

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/keyer-test/internal/timeline"
)

// fakeRig runs the device side of a net.Pipe.
type fakeRig struct {
	t    *testing.T
	conn net.Conn
}

func newPair(t *testing.T, timeout time.Duration) (*Client, *fakeRig) {
	t.Helper()
	host, dev := net.Pipe()
	t.Cleanup(func() {
		_ = host.Close()
		_ = dev.Close()
	})
	return New(host, timeout), &fakeRig{t: t, conn: dev}
}

func (r *fakeRig) read(n int) []byte {
	buf := make([]byte, n)
	_, err := io.ReadFull(r.conn, buf)
	if err != nil {
		r.t.Errorf("rig read: %v", err)
	}
	return buf
}

func (r *fakeRig) write(b ...byte) {
	if _, err := r.conn.Write(b); err != nil {
		r.t.Errorf("rig write: %v", err)
	}
}

func TestConfigureWindow(t *testing.T) {
	c, rig := newPair(t, time.Second)

	got := make(chan []byte, 1)
	go func() {
		got <- rig.read(2)
		rig.write(respACK)
	}()

	require.NoError(t, c.ConfigureWindow(0x8000))
	assert.Equal(t, []byte{cmdMaxPos, 0x7F}, <-got)
}

func TestConfigureWindow_Invalid(t *testing.T) {
	c, _ := newPair(t, time.Second)

	for _, w := range []int{0, 100, 0x8001, 0x20000} {
		assert.ErrorIs(t, c.ConfigureWindow(w), ErrWindow, "window %d", w)
	}
}

func TestSubmitEvents(t *testing.T) {
	c, rig := newPair(t, time.Second)

	events := []timeline.Record{
		{Position: 0, Value: 0x00, Kind: timeline.Set},
		{Position: 0x2000, Value: 0x01, Kind: timeline.Set},
		{Position: 0, Value: 0x01, Kind: timeline.ChangeReference},
	}

	got := make(chan []byte, 1)
	go func() {
		got <- rig.read(2 + len(events)*recordSize)
		// noise before the ACK is skipped
		rig.write('?', respACK)
	}()

	require.NoError(t, c.SubmitEvents(events))
	assert.Equal(t, []byte{
		cmdEvent, 2,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x20, 0x01, 0x00,
		0x00, 0x00, 0x01, 0x01,
	}, <-got)
}

func TestSubmitEvents_Count(t *testing.T) {
	c, _ := newPair(t, time.Second)

	assert.ErrorIs(t, c.SubmitEvents(nil), ErrEventCount)
	assert.ErrorIs(t, c.SubmitEvents(make([]timeline.Record, timeline.MaxEntries+1)), ErrEventCount)
}

func TestBeginCaptureAndFetchLog(t *testing.T) {
	c, rig := newPair(t, time.Second)

	go func() {
		assert.Equal(t, []byte{cmdLog}, rig.read(1))
		rig.write(respACK)

		assert.Equal(t, []byte{cmdResult}, rig.read(1))
		rig.write(1,
			0x00, 0x00, 0x00, 0x00,
			0x0a, 0x00, 0x01, 0x00,
			respACK)
	}()

	require.NoError(t, c.BeginCapture())

	log, err := c.FetchLog(timeline.MaxEntries)
	require.NoError(t, err)
	assert.Equal(t, []timeline.Record{
		{Position: 0, Value: 0x00, Kind: timeline.Set},
		{Position: 10, Value: 0x01, Kind: timeline.Set},
	}, log)
}

func TestFetchLog_Capacity(t *testing.T) {
	c, rig := newPair(t, time.Second)

	go func() {
		rig.read(1)
		rig.write(1, 0, 0, 0, 0, 1, 0, 1, 0, respACK)
	}()

	_, err := c.FetchLog(1)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestFetchLog_BadKind(t *testing.T) {
	c, rig := newPair(t, time.Second)

	go func() {
		rig.read(1)
		rig.write(0, 0, 0, 0, 7, respACK)
	}()

	_, err := c.FetchLog(timeline.MaxEntries)
	assert.ErrorIs(t, err, ErrProtocol)
}

func TestTimeout(t *testing.T) {
	c, rig := newPair(t, 50*time.Millisecond)

	go func() {
		// swallow the command, never ACK
		rig.read(1)
	}()

	err := c.BeginCapture()
	require.ErrorIs(t, err, ErrTimeout)
}

func TestPing(t *testing.T) {
	c, rig := newPair(t, time.Second)

	go func() {
		rig.read(1)
		rig.write(respACK)
		rig.read(1)
		rig.write(0x15)
	}()

	require.NoError(t, c.Ping())
	assert.ErrorIs(t, c.Ping(), ErrNotReady)
}

func TestClosed(t *testing.T) {
	c, _ := newPair(t, time.Second)
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.BeginCapture(), ErrClosed)
	assert.NoError(t, c.Close())
}

func TestRecordCodec(t *testing.T) {
	in := []timeline.Record{
		{Position: 0xFFFF, Value: 0xA5, Kind: timeline.Set},
		{Position: 3, Value: 0x01, Kind: timeline.ChangeReference},
	}
	out, err := decodeRecords(encodeRecords(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decodeRecords([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrProtocol)
}
