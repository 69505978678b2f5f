// cmd/keyertest/calibration.go
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/tamzrod/keyer-test/internal/calstore"
	"github.com/tamzrod/keyer-test/internal/keyer"
	"github.com/tamzrod/keyer-test/internal/logger"
)

// loadCalibration reads the saved relay latencies. A missing or unreadable
// file is a notice, never fatal: the session starts from zero constants.
func loadCalibration(path string, log logger.Logger, out io.Writer) keyer.Calibration {
	cal, err := calstore.Load(path)
	switch {
	case err == nil:
		return cal
	case errors.Is(err, calstore.ErrNotFound):
		fmt.Fprintf(out, "%s not found\n", path)
	default:
		fmt.Fprintf(out, "%s unreadable, using zero calibration\n", path)
		log.Warn("calibration load failed", "file", path, "error", err)
	}
	return keyer.Calibration{}
}
