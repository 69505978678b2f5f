// cmd/keyertest/menu.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tamzrod/keyer-test/internal/logger"
	"github.com/tamzrod/keyer-test/internal/measure"
)

// menu is the interactive front end of one session.
type menu struct {
	sess    *measure.Session
	log     logger.Logger
	out     io.Writer
	prompt  bool
	settle  time.Duration
	save    func() error
	calFile string
	status  *publisher
}

func (m *menu) print() {
	verb := "on"
	if m.sess.Verbose {
		verb = "off"
	}

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "menu:")
	fmt.Fprintln(m.out, "a) do all tests")
	for _, p := range measure.Procedures() {
		fmt.Fprintf(m.out, "%c) %s\n", p.Key, p.Name)
	}
	fmt.Fprintln(m.out, "c) calibration")
	fmt.Fprintf(m.out, "v) verbose output %s\n", verb)
	fmt.Fprintln(m.out, "x) exit")
	if m.prompt {
		fmt.Fprint(m.out, "-> ")
	}
}

// run reads selections until exit, end of input or cancellation. Input is
// read on its own goroutine so a cancelled ctx ends the menu at the prompt.
func (m *menu) run(ctx context.Context, in io.Reader) error {
	lines, errc := readLines(ctx, in)

	for {
		m.print()

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = strings.TrimSpace(l)
		}
		if line == "" {
			continue
		}

		key := strings.ToLower(line)[0]
		if key == 'x' {
			return nil
		}
		m.dispatch(ctx, key)
	}
}

// readLines scans in until EOF or ctx is done. The scan error is delivered
// on errc after lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

func (m *menu) dispatch(ctx context.Context, key byte) {
	switch key {
	case 'v':
		m.sess.Verbose = !m.sess.Verbose

	case 'c':
		m.status.busy()
		err := m.sess.Calibrate(ctx)
		m.status.done(err)
		if err != nil {
			m.log.Error("calibration failed", "error", err)
			fmt.Fprintf(m.out, "calibration failed: %v\n", err)
			return
		}
		if err := m.save(); err != nil {
			m.log.Error("calibration save failed", "file", m.calFile, "error", err)
			fmt.Fprintf(m.out, "cannot write %s\n", m.calFile)
			return
		}
		fmt.Fprintf(m.out, "%s saved\n", m.calFile)

	case 'a':
		err := m.sess.RunAll(ctx, m.settle, measure.RunHooks{
			Before: func(measure.Procedure) { m.status.busy() },
			After:  func(_ measure.Procedure, err error) { m.status.done(err) },
		})
		if err != nil {
			m.log.Debug("run all finished with failures", "error", err)
		}

	default:
		p, ok := measure.Lookup(key)
		if !ok {
			return
		}
		m.status.busy()
		err := p.Run(m.sess, ctx)
		m.status.done(err)
		if err != nil {
			m.log.Warn("procedure failed", "procedure", p.Name, "error", err)
		}
	}
}
