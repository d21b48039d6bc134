package partition

import (
	"github.com/ar90n/spart/constraints"
	"github.com/ar90n/spart/cursor"
)

// BSearch stably partitions [first, last) by pred and returns the start of
// the non-matching group. It merges like BottomUp, but since every block is
// already partitioned by the previous pass, the block boundaries are found by
// binary search.
func BSearch[C cursor.RandomAccessOf[C, E], E any](first, last C, pred func(E) bool) C {
	return BSearchN(first, last.Sub(first), pred)
}

// BSearchN is BSearch over the n elements starting at first.
func BSearchN[C cursor.RandomAccessOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	switch {
	case n == 0:
		return first
	case n == 1:
		return single(first, pred)
	}

	var l, m, r, next C
	Schedule(n, func(i, width, limit D) {
		if i == 0 {
			next = first
		}

		m = next.Add(int(width))
		l = PartitionPointN(next, width, pred)
		next = m.Add(int(limit - width))
		r = PartitionPointN(m, limit-width, pred)

		if !l.Equal(m) && !m.Equal(r) {
			RotateSwap(l, m, r)
		}
	})

	return l.Add(r.Sub(m))
}

// BSearchBidi is BSearch for bidirectional-only ranges, with block
// boundaries found by PartitionPointBidiN.
func BSearchBidi[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	return BSearchBidiN(first, cursor.Distance(first, last), pred)
}

// BSearchBidiN is BSearchBidi over the n elements starting at first.
func BSearchBidiN[C cursor.BidirectionalOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	switch {
	case n == 0:
		return first
	case n == 1:
		return single(first, pred)
	}

	var l, m, r, next C
	Schedule(n, func(i, width, limit D) {
		if i == 0 {
			next = first
		}

		m = cursor.Advance(next, width)
		l = PartitionPointBidiN(next, width, pred)
		next = cursor.Advance(m, limit-width)
		r = PartitionPointBidiN(m, limit-width, pred)

		if !l.Equal(m) && !m.Equal(r) {
			Rotate(l, m, r)
		}
	})

	return cursor.Advance(l, cursor.Distance(m, r))
}
