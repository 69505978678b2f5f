// internal/device/sim/iambic.go
package sim

import "github.com/tamzrod/keyer-test/internal/keyer"

type element int

const (
	elemDit element = iota
	elemDah
)

type phase int

const (
	phaseIdle phase = iota
	phaseMark
	phaseSpace
)

// iambic is a keyer with dit and dah memory. Squeezing both paddles
// alternates elements; a paddle touched during an element queues the
// opposite element.
type iambic struct {
	unit      int
	phase     phase
	cur       element
	remaining int
	memDit    bool
	memDah    bool
}

func newIambic(unit int) *iambic {
	return &iambic{unit: unit}
}

func (k *iambic) start(e element) {
	k.cur = e
	k.phase = phaseMark
	k.remaining = k.unit
	if e == elemDah {
		k.remaining = 3 * k.unit
		k.memDah = false
	} else {
		k.memDit = false
	}
}

// step advances one tick and reports whether the output is keyed.
func (k *iambic) step(contacts uint8) bool {
	dit := contacts&keyer.DitBit != 0
	dah := contacts&keyer.DahBit != 0

	if k.phase == phaseIdle {
		switch {
		case dit:
			k.start(elemDit)
		case dah:
			k.start(elemDah)
		default:
			return false
		}
	} else {
		if k.cur == elemDit && dah {
			k.memDah = true
		}
		if k.cur == elemDah && dit {
			k.memDit = true
		}
	}

	keyed := k.phase == phaseMark

	k.remaining--
	if k.remaining > 0 {
		return keyed
	}

	if k.phase == phaseMark {
		k.phase = phaseSpace
		k.remaining = k.unit
		return keyed
	}

	switch {
	case k.cur == elemDit && k.memDah:
		k.start(elemDah)
	case k.cur == elemDah && k.memDit:
		k.start(elemDit)
	case dit && dah:
		if k.cur == elemDit {
			k.start(elemDah)
		} else {
			k.start(elemDit)
		}
	case dit:
		k.start(elemDit)
	case dah:
		k.start(elemDah)
	default:
		k.phase = phaseIdle
	}
	return keyed
}
