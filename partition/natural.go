package partition

import (
	"github.com/ar90n/spart/constraints"
	"github.com/ar90n/spart/cursor"
)

// Natural stably partitions [first, last) by pred and returns the start of
// the non-matching group.
//
// Each sweep looks for a run of non-matching elements followed by a run of
// matching ones and rotates the matching run in front, then continues after
// it. Sweeps repeat until one makes no change, so the cost depends on how
// far the input is from partitioned: long runs are cheap, strictly
// alternating input takes O(n^2) time.
func Natural[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	if first.Equal(last) {
		return first
	}

	var l, m, r C
	for changed := true; changed; {
		changed = false

		next := first
		for {
			// next holds a matching element unless this is the sweep's first step.
			start := next
			if !next.Equal(first) {
				start = next.Next()
			}

			l = findIfNot(start, last, pred)
			m = last
			if !l.Equal(last) {
				m = findIf(l.Next(), last, pred)
			}
			r = last
			if !m.Equal(last) {
				r = findIfNot(m.Next(), last, pred)
			}
			next = last
			if !r.Equal(last) {
				next = findIf(r.Next(), last, pred)
			}

			if !m.Equal(r) {
				Rotate(l, m, r)
				changed = true
			}

			if next.Equal(last) {
				break
			}
		}
	}

	return cursor.Advance(l, cursor.Distance(m, r))
}

// NaturalN is Natural over the n elements starting at first.
func NaturalN[C cursor.BidirectionalOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
	return Natural(first, cursor.Advance(first, n), pred)
}
