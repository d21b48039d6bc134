package partition

import (
	"github.com/ar90n/spart/constraints"
	"github.com/ar90n/spart/cursor"
)

// PartitionPoint returns the first position in [first, last) whose element
// does not satisfy pred. The range must already be partitioned by pred;
// otherwise the result is some position in the range.
func PartitionPoint[C cursor.RandomAccessOf[C, E], E any](first, last C, pred func(E) bool) C {
	return PartitionPointN(first, last.Sub(first), pred)
}

// PartitionPointN is PartitionPoint over the n elements starting at first.
func PartitionPointN[C cursor.RandomAccessOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	for n > 0 {
		half := n / 2
		middle := first.Add(int(half))

		if pred(middle.Value()) {
			first = middle.Next()
			n -= half + 1
		} else {
			n = half
		}
	}

	return first
}

// PartitionPointBidi is PartitionPoint for bidirectional-only ranges. It
// makes the same O(log n) predicate calls, but every probe walks to the
// middle, so it takes O(n) steps in total.
func PartitionPointBidi[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	return PartitionPointBidiN(first, cursor.Distance(first, last), pred)
}

// PartitionPointBidiN is PartitionPointBidi over the n elements starting at
// first.
func PartitionPointBidiN[C cursor.BidirectionalOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	for n > 0 {
		half := n / 2
		middle := cursor.Advance(first, half)

		if pred(middle.Value()) {
			first = middle.Next()
			n -= half + 1
		} else {
			n = half
		}
	}

	return first
}
