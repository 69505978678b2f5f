// cmd/keyertest/status.go
package main

import (
	"github.com/tamzrod/keyer-test/internal/logger"
	"github.com/tamzrod/keyer-test/internal/measure"
	"github.com/tamzrod/keyer-test/internal/status"
	"github.com/tamzrod/keyer-test/internal/writer"
)

// publisher owns the status snapshot and pushes it after every procedure.
// A nil writer disables publishing.
type publisher struct {
	sw   writer.StatusWriter
	sess *measure.Session
	log  logger.Logger
	snap status.Snapshot
}

func newPublisher(sw writer.StatusWriter, sess *measure.Session, log logger.Logger) *publisher {
	return &publisher{
		sw:   sw,
		sess: sess,
		log:  log,
		snap: status.Snapshot{Health: status.HealthUnknown},
	}
}

// start performs the full block write (identity re-assert).
func (p *publisher) start() {
	p.write()
}

func (p *publisher) busy() {
	p.snap.Health = status.HealthBusy
	p.write()
}

// done records the outcome of one procedure.
func (p *publisher) done(err error) {
	if err == nil {
		p.snap.Health = status.HealthOK
		p.snap.LastErrorCode = 0
		if p.snap.Completed < 0xFFFF {
			p.snap.Completed++
		}
	} else {
		p.snap.Health = status.HealthError
		p.snap.LastErrorCode = measure.ErrorCode(err)
	}
	p.write()
}

func (p *publisher) write() {
	if p == nil || p.sw == nil {
		return
	}
	p.snap.Calibration = p.sess.Calibration
	p.snap.Baselines = p.sess.Baselines

	if err := p.sw.WriteStatus(p.snap); err != nil {
		p.log.Warn("status write failed", "error", err)
	}
}
