// internal/device/device_test.go
package device

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/keyer-test/internal/config"
	"github.com/tamzrod/keyer-test/internal/device/arduino"
	"github.com/tamzrod/keyer-test/internal/device/sim"
	"github.com/tamzrod/keyer-test/internal/timeline"
)

type fakeChannel struct {
	failAt string
	calls  []string
	window int
	events []timeline.Record
	log    []timeline.Record
}

func (f *fakeChannel) step(name string) error {
	f.calls = append(f.calls, name)
	if f.failAt == name {
		return errors.New("fail " + name)
	}
	return nil
}

func (f *fakeChannel) ConfigureWindow(maxPos int) error {
	f.window = maxPos
	return f.step("window")
}

func (f *fakeChannel) SubmitEvents(events []timeline.Record) error {
	f.events = events
	return f.step("events")
}

func (f *fakeChannel) BeginCapture() error { return f.step("capture") }

func (f *fakeChannel) FetchLog(capacity int) ([]timeline.Record, error) {
	if err := f.step("log"); err != nil {
		return nil, err
	}
	return f.log, nil
}

var program = []timeline.Record{
	{Position: 0, Value: 0},
	{Position: 0x800, Value: 1},
}

func TestExchange_Success(t *testing.T) {
	ch := &fakeChannel{log: []timeline.Record{{Position: 0x805, Value: 1}}}

	log, err := Exchange(ch, 0x2000, program)
	require.NoError(t, err)

	assert.Equal(t, []string{"window", "events", "capture", "log"}, ch.calls)
	assert.Equal(t, 0x2000, ch.window)
	assert.Equal(t, program, ch.events)
	assert.Equal(t, ch.log, log)
}

func TestExchange_Failure(t *testing.T) {
	for _, step := range []string{"window", "events", "capture", "log"} {
		t.Run(step, func(t *testing.T) {
			ch := &fakeChannel{failAt: step, log: program}

			log, err := Exchange(ch, 0x2000, program)
			require.Error(t, err)
			assert.Nil(t, log)
			assert.Equal(t, step, ch.calls[len(ch.calls)-1], "exchange must stop at the failing step")
		})
	}
}

func TestExchange_EmptyProgram(t *testing.T) {
	ch := &fakeChannel{}
	_, err := Exchange(ch, 0x2000, nil)
	assert.ErrorIs(t, err, ErrEmptyProgram)
	assert.Empty(t, ch.calls)
}

type fakePinger struct {
	errs  []error
	calls int
}

func (f *fakePinger) Ping() error {
	f.calls++
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func TestWaitReady_RetriesTimeouts(t *testing.T) {
	timeout := fmt.Errorf("ready: %w", arduino.ErrTimeout)
	p := &fakePinger{errs: []error{timeout, timeout}}

	require.NoError(t, WaitReady(context.Background(), p, 5, time.Millisecond))
	assert.Equal(t, 3, p.calls)
}

func TestWaitReady_GivesUp(t *testing.T) {
	p := &fakePinger{errs: []error{arduino.ErrTimeout, arduino.ErrTimeout, arduino.ErrTimeout}}

	err := WaitReady(context.Background(), p, 3, time.Millisecond)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, err, arduino.ErrTimeout)
	assert.Equal(t, 3, p.calls)
}

func TestWaitReady_WrongAnswerIsFinal(t *testing.T) {
	p := &fakePinger{errs: []error{arduino.ErrNotReady}}

	err := WaitReady(context.Background(), p, 10, time.Millisecond)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, err, arduino.ErrNotReady)
	assert.Equal(t, 1, p.calls)
}

func TestWaitReady_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &fakePinger{errs: []error{arduino.ErrTimeout, arduino.ErrTimeout}}
	err := WaitReady(ctx, p, 10, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, p.calls)
}

func TestBuild_Simulated(t *testing.T) {
	d, closer, err := Build(cfg.DeviceConfig{
		Simulate: true,
		Sim:      cfg.SimConfig{DitTicks: 100},
	})
	require.NoError(t, err)
	defer closer()

	_, ok := d.(*sim.Rig)
	assert.True(t, ok)
	assert.NoError(t, d.Ping())
}

func TestBuild_SimulatedInvalid(t *testing.T) {
	_, _, err := Build(cfg.DeviceConfig{Simulate: true})
	assert.Error(t, err)
}

func TestBuild_PortRequired(t *testing.T) {
	_, _, err := Build(cfg.DeviceConfig{})
	assert.Error(t, err)
}
