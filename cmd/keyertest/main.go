// cmd/keyertest/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/tamzrod/keyer-test/internal/calstore"
	"github.com/tamzrod/keyer-test/internal/config"
	"github.com/tamzrod/keyer-test/internal/device"
	"github.com/tamzrod/keyer-test/internal/logger"
	"github.com/tamzrod/keyer-test/internal/measure"
	"github.com/tamzrod/keyer-test/internal/writer"
)

func main() {
	os.Exit(run())
}

// run owns every resource, so deferred closers always execute before exit.
func run() int {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: keyertest <config.yaml>")
		return 2
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return 1
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config validation failed: %v\n", err)
		return 1
	}
	config.Normalize(cfg)

	level, _ := logger.ParseLevel(cfg.Log.Level) // validated above
	log := logger.New(logger.Options{
		Level:  level,
		Format: logger.Format(cfg.Log.Format),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cal := loadCalibration(cfg.Calibration.File, log, os.Stdout)

	// --------------------
	// Rig
	// --------------------

	dev, closeDevice, err := device.Build(cfg.Device)
	if err != nil {
		fmt.Println("device open error")
		log.Error("device open error", "port", cfg.Device.Port, "error", err)
		return 1
	}
	defer closeDevice()

	fmt.Println("wait for device...")
	err = device.WaitReady(ctx, dev,
		cfg.Device.ReadyAttempts,
		time.Duration(cfg.Device.ReadyIntervalMs)*time.Millisecond,
	)
	if err != nil {
		fmt.Println("device not ready")
		log.Error("device not ready", "error", err)
		return 1
	}
	fmt.Println("device ready")

	// --------------------
	// Status block (optional)
	// --------------------

	sw, closeStatus, err := writer.BuildStatusWriter(cfg.Status)
	if err != nil {
		log.Error("status writer failed", "endpoint", cfg.Status.Endpoint, "error", err)
		return 1
	}
	defer closeStatus()

	// --------------------
	// Session
	// --------------------

	sess := measure.NewSession(dev, log, os.Stdout, cal)
	sess.Verbose = cfg.Session.Verbose
	sess.LogCalibration()

	m := &menu{
		sess:   sess,
		log:    log,
		out:    os.Stdout,
		prompt: term.IsTerminal(int(os.Stdin.Fd())),
		settle: time.Duration(cfg.Session.SettleMs) * time.Millisecond,
		save: func() error {
			return calstore.Save(cfg.Calibration.File, sess.Calibration)
		},
		calFile: cfg.Calibration.File,
		status:  newPublisher(sw, sess, log),
	}

	m.status.start()
	if err := m.run(ctx, os.Stdin); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			return 0
		}
		log.Error("menu stopped", "error", err)
		return 1
	}
	return 0
}
