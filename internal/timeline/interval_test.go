// internal/timeline/interval_test.go
package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIntervals_Parity(t *testing.T) {
	// k = 5 transitions: on at 10, off 14, on 30, off 31, on 50
	sparse := []Record{
		{Position: 10, Value: 0x01},
		{Position: 14, Value: 0x00},
		{Position: 30, Value: 0x03},
		{Position: 31, Value: 0x02},
		{Position: 50, Value: 0x01},
	}
	tl := Decode(sparse, 64)

	u, n := ExtractIntervals(tl, len(tl), 8)
	require.Equal(t, 4, n)
	assert.Equal(t, []int{4, 16, 1, 19, Unmeasured, Unmeasured, Unmeasured, Unmeasured}, u)
}

func TestExtractIntervals_StopsAtMax(t *testing.T) {
	tl := squareWave(5, 200)

	u, n := ExtractIntervals(tl, len(tl), 3)
	require.Equal(t, 3, n)
	assert.Equal(t, []int{5, 5, 5}, u)
}

func TestExtractIntervals_OutputHighAtStart(t *testing.T) {
	// output already on at tick 0: first "set" match is tick 0
	sparse := []Record{
		{Position: 0, Value: 0x01},
		{Position: 6, Value: 0x00},
	}
	tl := Decode(sparse, 20)

	u, n := ExtractIntervals(tl, len(tl), 2)
	require.Equal(t, 1, n)
	assert.Equal(t, []int{6, Unmeasured}, u)
}

func TestExtractIntervals_LengthBoundsWindow(t *testing.T) {
	tl := squareWave(5, 100)

	_, n := ExtractIntervals(tl, 12, 8)
	assert.Equal(t, 1, n)
}

func TestExtractIntervals_NoTransitions(t *testing.T) {
	tl := Decode(nil, 32)

	u, n := ExtractIntervals(tl, len(tl), 4)
	assert.Equal(t, 0, n)
	assert.Equal(t, []int{Unmeasured, Unmeasured, Unmeasured, Unmeasured}, u)
}

func TestExtractIntervals_ZeroMax(t *testing.T) {
	u, n := ExtractIntervals(squareWave(3, 30), 30, 0)
	assert.Nil(t, u)
	assert.Equal(t, 0, n)
}
