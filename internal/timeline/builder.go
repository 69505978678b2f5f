// internal/timeline/builder.go
package timeline

import "fmt"

// Builder assembles a sparse event sequence.
//
// Positions must strictly increase within a reference segment. A
// ChangeReference record opens a new segment and its own position is not
// compared with the previous one. The first violation is kept and every
// later Append is ignored.
type Builder struct {
	recs []Record
	last int
	err  error
}

func NewBuilder() *Builder {
	return &Builder{
		recs: make([]Record, 0, 8),
		last: -1,
	}
}

// Append adds one record.
func (b *Builder) Append(pos int, val uint8, kind Kind) {
	if b.err != nil {
		return
	}
	if len(b.recs) >= MaxEntries {
		b.err = fmt.Errorf("%w: %d entries", ErrBufferFull, MaxEntries)
		return
	}
	if pos < 0 || pos > MaxPosition {
		b.err = fmt.Errorf("%w: %d", ErrPositionRange, pos)
		return
	}
	if kind != ChangeReference && pos <= b.last {
		b.err = fmt.Errorf("%w: entry %d at %d after %d", ErrPositionOrder, len(b.recs), pos, b.last)
		return
	}

	b.last = pos
	b.recs = append(b.recs, Record{Position: pos, Value: val, Kind: kind})
}

// Len returns the number of records appended so far.
func (b *Builder) Len() int { return len(b.recs) }

// Err returns the first precondition violation, if any.
func (b *Builder) Err() error { return b.err }

// Records returns the built sequence or the first violation.
func (b *Builder) Records() ([]Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.recs, nil
}
