// internal/timeline/interval.go
package timeline

import "github.com/tamzrod/keyer-test/internal/keyer"

//	 t[0]     t[1]     t[2]     t[3]     t[4]
//	  +--------+        +--------+        +----
//	  |        |        |        |        |
//	--+        +--------+        +--------+
//	  |<-u[0]->|<-u[1]->|<-u[2]->|<-u[3]->|
//
// u[even] are on-durations of the output, u[odd] off-durations.

// ExtractIntervals measures up to maxIntervals consecutive on/off durations of the
// keyer output within the first length ticks of tl.
//
// The result always has maxIntervals slots; slots past the returned count hold
// Unmeasured.
func ExtractIntervals(tl Timeline, length, maxIntervals int) ([]int, int) {
	if maxIntervals <= 0 {
		return nil, 0
	}
	if length > len(tl) {
		length = len(tl)
	}
	if length < 0 {
		length = 0
	}

	out := make([]int, maxIntervals)
	c := Cursor{Pos: 0, Remaining: length}
	n := 0
	t0 := 0

	for i := 0; i <= maxIntervals; i++ {
		target := keyer.OutBit
		if i&1 == 1 {
			target = 0
		}

		rec, ok, at := tl.Find(c, keyer.OutBit, target)
		if !ok {
			break
		}

		if i > 0 {
			out[n] = rec.Position - t0
			n++
		}
		t0 = rec.Position
		c = at.Next()
	}

	for i := n; i < maxIntervals; i++ {
		out[i] = Unmeasured
	}

	return out, n
}
