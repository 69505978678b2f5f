// internal/timeline/scan.go
package timeline

// Cursor is the state of a consuming scan: the next tick to examine and how
// many ticks are left in the window.
type Cursor struct {
	Pos       int
	Remaining int
}

// Start returns a cursor over the whole timeline.
func (tl Timeline) Start() Cursor {
	return Cursor{Pos: 0, Remaining: len(tl)}
}

// From returns a cursor over ticks [pos, len).
func (tl Timeline) From(pos int) Cursor {
	if pos < 0 {
		pos = 0
	}
	if pos > len(tl) {
		pos = len(tl)
	}
	return Cursor{Pos: pos, Remaining: len(tl) - pos}
}

// Next consumes the tick under the cursor.
func (c Cursor) Next() Cursor {
	if c.Remaining <= 0 {
		return c
	}
	return Cursor{Pos: c.Pos + 1, Remaining: c.Remaining - 1}
}

// Find scans forward for the first tick whose masked value equals target.
//
// Ticks that do not match are consumed. On a match the returned cursor sits
// on the matching tick; the caller must call Next before scanning again. When
// nothing matches, ok is false and the returned cursor is exhausted.
func (tl Timeline) Find(c Cursor, mask, target uint8) (rec Record, ok bool, next Cursor) {
	for c.Remaining > 0 && c.Pos < len(tl) {
		r := tl[c.Pos]
		if r.Value&mask == target {
			return r, true, c
		}
		c.Pos++
		c.Remaining--
	}
	c.Remaining = 0
	return Record{}, false, c
}
