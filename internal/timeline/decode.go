// internal/timeline/decode.go
package timeline

// Timeline is the dense form of a sparse sequence: entry i describes tick i.
type Timeline []Record

// Decode expands a sparse sequence into a new timeline of the given capacity.
func Decode(sparse []Record, capacity int) Timeline {
	if capacity < 0 {
		capacity = 0
	}
	tl := make(Timeline, capacity)
	DecodeInto(tl, sparse)
	return tl
}

// DecodeInto overwrites dst with the forward-filled expansion of sparse.
//
// Ticks before the first record are zero. A record takes effect at its own
// position; records whose position is already behind the current tick (the
// relative offsets carried after a ChangeReference) take effect as soon as
// the cursor reaches them, in order.
func DecodeInto(dst Timeline, sparse []Record) {
	next := 0
	var val uint8
	var kind Kind

	for i := range dst {
		for next < len(sparse) && sparse[next].Position <= i {
			val = sparse[next].Value
			kind = sparse[next].Kind
			next++
		}
		dst[i] = Record{Position: i, Value: val, Kind: kind}
	}
}
