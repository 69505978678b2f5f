// internal/timeline/decode_test.go
package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Empty(t *testing.T) {
	tl := Decode(nil, 16)
	require.Len(t, tl, 16)
	for i, r := range tl {
		assert.Equal(t, i, r.Position)
		assert.Equal(t, uint8(0), r.Value, "tick %d", i)
		assert.Equal(t, Set, r.Kind)
	}
}

func TestDecode_ForwardFill(t *testing.T) {
	sparse := []Record{
		{Position: 3, Value: 0x01},
		{Position: 7, Value: 0x03},
		{Position: 12, Value: 0x00},
	}

	tl := Decode(sparse, 16)

	// ticks before the first record are zero
	for i := 0; i < 3; i++ {
		assert.Equal(t, uint8(0), tl[i].Value, "tick %d", i)
	}

	// records are preserved at their exact positions
	for _, s := range sparse {
		assert.Equal(t, s.Value, tl[s.Position].Value, "record at %d", s.Position)
	}

	// skipped ticks repeat the nearest preceding record
	for i := 3; i < 7; i++ {
		assert.Equal(t, uint8(0x01), tl[i].Value, "tick %d", i)
	}
	for i := 7; i < 12; i++ {
		assert.Equal(t, uint8(0x03), tl[i].Value, "tick %d", i)
	}
	for i := 12; i < 16; i++ {
		assert.Equal(t, uint8(0x00), tl[i].Value, "tick %d", i)
	}
}

func TestDecode_RecordsPastCapacityIgnored(t *testing.T) {
	sparse := []Record{
		{Position: 0, Value: 0x02},
		{Position: 40, Value: 0x00},
	}

	tl := Decode(sparse, 10)
	require.Len(t, tl, 10)
	assert.Equal(t, uint8(0x02), tl[9].Value)
}

func TestDecode_KindFollowsRecord(t *testing.T) {
	sparse := []Record{
		{Position: 2, Value: 0x01, Kind: ChangeReference},
		{Position: 5, Value: 0x00, Kind: Set},
	}

	tl := Decode(sparse, 8)
	assert.Equal(t, Set, tl[1].Kind)
	assert.Equal(t, ChangeReference, tl[2].Kind)
	assert.Equal(t, ChangeReference, tl[4].Kind)
	assert.Equal(t, Set, tl[5].Kind)
}

func TestDecodeInto_Overwrites(t *testing.T) {
	buf := make(Timeline, 8)

	DecodeInto(buf, []Record{{Position: 0, Value: 0x03}})
	assert.Equal(t, uint8(0x03), buf[7].Value)

	DecodeInto(buf, []Record{{Position: 4, Value: 0x01}})
	assert.Equal(t, uint8(0x00), buf[3].Value)
	assert.Equal(t, uint8(0x01), buf[7].Value)
}

func TestDecode_ChangeReferenceSequence(t *testing.T) {
	// device log: the reference marker carries a relative offset
	sparse := []Record{
		{Position: 0, Value: 0x00, Kind: Set},
		{Position: 10, Value: 0x01, Kind: Set},
		{Position: 0, Value: 0x01, Kind: ChangeReference},
		{Position: 19, Value: 0x00, Kind: Set},
	}

	tl := Decode(sparse, 20)

	assert.Equal(t, uint8(0x00), tl[9].Value)
	assert.Equal(t, uint8(0x01), tl[10].Value)
	assert.Equal(t, uint8(0x01), tl[18].Value)
	assert.Equal(t, uint8(0x00), tl[19].Value)

	rec, ok, c := tl.Find(tl.Start(), 0x01, 0x01)
	require.True(t, ok)
	assert.Equal(t, 10, rec.Position)

	rec, ok, _ = tl.Find(c.Next(), 0x01, 0x00)
	require.True(t, ok)
	assert.Equal(t, 19, rec.Position)

	u, n := ExtractIntervals(tl, len(tl), 1)
	require.Equal(t, 1, n)
	assert.Equal(t, []int{9}, u)
}
