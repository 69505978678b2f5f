// internal/timeline/builder_test.go
package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Append(t *testing.T) {
	b := NewBuilder()
	b.Append(0, 0x00, Set)
	b.Append(0x2000, 0x01, Set)
	b.Append(0, 0x01, ChangeReference)
	b.Append(1, 0x03, Set)
	b.Append(40, 0x00, Set)

	recs, err := b.Records()
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, Record{Position: 0, Value: 0x01, Kind: ChangeReference}, recs[2])
	assert.Equal(t, Record{Position: 40, Value: 0x00, Kind: Set}, recs[4])
}

func TestBuilder_OrderViolation(t *testing.T) {
	b := NewBuilder()
	b.Append(10, 0x01, Set)
	b.Append(10, 0x00, Set)

	_, err := b.Records()
	require.ErrorIs(t, err, ErrPositionOrder)

	// sticky: later appends are ignored
	b.Append(20, 0x00, Set)
	assert.Equal(t, 1, b.Len())
	assert.ErrorIs(t, b.Err(), ErrPositionOrder)
}

func TestBuilder_OrderWithinSegment(t *testing.T) {
	b := NewBuilder()
	b.Append(100, 0x01, Set)
	b.Append(5, 0x01, ChangeReference)
	b.Append(5, 0x00, Set)

	_, err := b.Records()
	require.ErrorIs(t, err, ErrPositionOrder)
}

func TestBuilder_Range(t *testing.T) {
	b := NewBuilder()
	b.Append(-1, 0x00, Set)
	_, err := b.Records()
	require.ErrorIs(t, err, ErrPositionRange)

	b = NewBuilder()
	b.Append(MaxPosition+1, 0x00, Set)
	_, err = b.Records()
	require.ErrorIs(t, err, ErrPositionRange)
}

func TestBuilder_Full(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < MaxEntries; i++ {
		b.Append(i, uint8(i&1), Set)
	}
	require.NoError(t, b.Err())

	b.Append(MaxEntries, 0, Set)
	_, err := b.Records()
	require.ErrorIs(t, err, ErrBufferFull)
}
