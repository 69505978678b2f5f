// internal/calstore/calstore.go
// Package calstore persists relay latency calibration between runs.
package calstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/keyer-test/internal/keyer"
)

// ErrNotFound indicates no calibration has been saved yet.
// It wraps os.ErrNotExist.
var ErrNotFound = fmt.Errorf("calstore: no calibration: %w", os.ErrNotExist)

// file is the on-disk layout.
type file struct {
	Dit keyer.Latency `yaml:"dit"`
	Dah keyer.Latency `yaml:"dah"`
}

// Load reads calibration constants from path.
func Load(path string) (keyer.Calibration, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return keyer.Calibration{}, ErrNotFound
	}
	if err != nil {
		return keyer.Calibration{}, fmt.Errorf("calstore: read %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return keyer.Calibration{}, fmt.Errorf("calstore: decode %s: %w", path, err)
	}
	return keyer.Calibration{Dit: f.Dit, Dah: f.Dah}, nil
}

// Save writes calibration constants to path, replacing the file atomically.
func Save(path string, cal keyer.Calibration) error {
	raw, err := yaml.Marshal(file{Dit: cal.Dit, Dah: cal.Dah})
	if err != nil {
		return fmt.Errorf("calstore: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".calstore-*")
	if err != nil {
		return fmt.Errorf("calstore: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("calstore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("calstore: write: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("calstore: %w", err)
	}
	return nil
}
