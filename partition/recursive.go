package partition

import (
	"github.com/ar90n/spart/constraints"
	"github.com/ar90n/spart/cursor"
)

// Recursive stably partitions [first, last) by pred and returns the start of
// the non-matching group. The recursion depth is O(log n).
func Recursive[C cursor.RandomAccessOf[C, E], E any](first, last C, pred func(E) bool) C {
	return RecursiveN(first, last.Sub(first), pred)
}

// RecursiveN is Recursive over the n elements starting at first.
func RecursiveN[C cursor.RandomAccessOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	switch {
	case n == 0:
		return first
	case n == 1:
		return single(first, pred)
	}

	half := n / 2
	l := RecursiveN(first, half, pred)
	m := first.Add(int(half))
	r := RecursiveN(m, n-half, pred)

	if !l.Equal(m) && !m.Equal(r) {
		RotateSwap(l, m, r)
	}

	return l.Add(r.Sub(m))
}

// RecursiveBidi is Recursive for bidirectional-only ranges. The result is the
// same; splitting walks to the middle of every range.
func RecursiveBidi[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	return RecursiveBidiN(first, cursor.Distance(first, last), pred)
}

// RecursiveBidiN is RecursiveBidi over the n elements starting at first.
func RecursiveBidiN[C cursor.BidirectionalOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	switch {
	case n == 0:
		return first
	case n == 1:
		return single(first, pred)
	}

	half := n / 2
	l := RecursiveBidiN(first, half, pred)
	m := cursor.Advance(first, half)
	r := RecursiveBidiN(m, n-half, pred)

	if !l.Equal(m) && !m.Equal(r) {
		Rotate(l, m, r)
	}

	return cursor.Advance(l, cursor.Distance(m, r))
}
