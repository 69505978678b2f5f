// internal/device/arduino/client.go
// Package arduino speaks the keyer test rig firmware protocol over a serial
// port or a TCP serial bridge.
package arduino

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/goburrow/serial"

	"github.com/tamzrod/keyer-test/internal/timeline"
)

// DefaultBaudRate is the firmware's fixed line speed.
const DefaultBaudRate = 38400

// Config is minimal transport config.
type Config struct {
	// Port is a serial device path or tcp://host:port.
	Port     string
	BaudRate int
	Timeout  time.Duration
}

// Client implements device.Channel against the rig firmware.
// It is not safe for concurrent use: the link is strictly request/response.
type Client struct {
	rw      io.ReadWriteCloser
	timeout time.Duration
}

// deadliner is implemented by net.Conn; serial ports time out on their own.
type deadliner interface {
	SetDeadline(t time.Time) error
}

// Open connects to the rig.
func Open(cfg Config) (*Client, error) {
	if cfg.Port == "" {
		return nil, errors.New("arduino: port required")
	}

	if addr, ok := strings.CutPrefix(cfg.Port, "tcp://"); ok {
		conn, err := net.DialTimeout("tcp", addr, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("arduino: dial %s: %w", addr, err)
		}
		return New(conn, cfg.Timeout), nil
	}

	baud := cfg.BaudRate
	if baud <= 0 {
		baud = DefaultBaudRate
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Port,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("arduino: open %s: %w", cfg.Port, err)
	}

	return New(port, cfg.Timeout), nil
}

// New wraps an already open link.
func New(rw io.ReadWriteCloser, timeout time.Duration) *Client {
	return &Client{rw: rw, timeout: timeout}
}

// Close releases the link.
func (c *Client) Close() error {
	if c == nil || c.rw == nil {
		return nil
	}
	err := c.rw.Close()
	c.rw = nil
	return err
}

// ---- device.Channel ----

// ConfigureWindow declares the capture length of the next round-trip.
func (c *Client) ConfigureWindow(maxPos int) error {
	b, err := windowByte(maxPos)
	if err != nil {
		return err
	}
	return c.command("maxpos", cmdMaxPos, b)
}

// SubmitEvents uploads a stimulus program.
func (c *Client) SubmitEvents(events []timeline.Record) error {
	if len(events) == 0 || len(events) > timeline.MaxEntries {
		return fmt.Errorf("%w: %d", ErrEventCount, len(events))
	}

	payload := encodeRecords(events)
	return c.command("event", cmdEvent, append([]byte{byte(len(events) - 1)}, payload...)...)
}

// BeginCapture runs the uploaded program and records the input lines.
func (c *Client) BeginCapture() error {
	return c.command("log", cmdLog)
}

// FetchLog downloads the recorded sparse log.
func (c *Client) FetchLog(capacity int) ([]timeline.Record, error) {
	if err := c.send("result", cmdResult); err != nil {
		return nil, err
	}

	var n [1]byte
	if err := c.readFull("result count", n[:]); err != nil {
		return nil, err
	}
	entries := int(n[0]) + 1

	data := make([]byte, entries*recordSize)
	if err := c.readFull("result records", data); err != nil {
		return nil, err
	}
	if err := c.waitACK("result"); err != nil {
		return nil, err
	}

	if entries > capacity {
		return nil, fmt.Errorf("%w: log of %d entries exceeds capacity %d", ErrProtocol, entries, capacity)
	}

	return decodeRecords(data)
}

// Ping checks readiness once.
func (c *Client) Ping() error {
	if err := c.send("ready", cmdReady); err != nil {
		return err
	}

	var b [1]byte
	if err := c.readFull("ready", b[:]); err != nil {
		return err
	}
	if b[0] != respACK {
		return fmt.Errorf("%w: got 0x%02x", ErrNotReady, b[0])
	}
	return nil
}

// ---- internal request/response helpers ----

func (c *Client) command(op string, cmd byte, args ...byte) error {
	if err := c.send(op, cmd, args...); err != nil {
		return err
	}
	return c.waitACK(op)
}

func (c *Client) send(op string, cmd byte, args ...byte) error {
	if c == nil || c.rw == nil {
		return ErrClosed
	}
	c.arm()

	buf := append([]byte{cmd}, args...)
	for len(buf) > 0 {
		n, err := c.rw.Write(buf)
		if err != nil {
			return c.wrap(op, err)
		}
		buf = buf[n:]
	}
	return nil
}

func (c *Client) readFull(op string, buf []byte) error {
	if c == nil || c.rw == nil {
		return ErrClosed
	}
	c.arm()

	if _, err := io.ReadFull(c.rw, buf); err != nil {
		return c.wrap(op, err)
	}
	return nil
}

// waitACK skips anything that is not an ACK.
func (c *Client) waitACK(op string) error {
	var b [1]byte
	for i := 0; i < maxAckDiscard; i++ {
		if err := c.readFull(op+" ack", b[:]); err != nil {
			return err
		}
		if b[0] == respACK {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: no ACK within %d bytes", ErrProtocol, op, maxAckDiscard)
}

func (c *Client) arm() {
	if d, ok := c.rw.(deadliner); ok && c.timeout > 0 {
		_ = d.SetDeadline(time.Now().Add(c.timeout))
	}
}

func (c *Client) wrap(op string, err error) error {
	var ne net.Error
	if errors.Is(err, serial.ErrTimeout) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		(errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, op, err)
	}
	return fmt.Errorf("arduino: %s: %w", op, err)
}
