package partition

import (
	"github.com/ar90n/spart/constraints"
	"github.com/ar90n/spart/cursor"
)

// Schedule runs the merge plan shared by BottomUp and BSearch for a range of
// n elements and returns the number of passes.
//
// Pass k uses blocks of width 2^k. Within a pass the range is cut into
// chunks of up to two blocks, and merge is called for every chunk that has a
// right block, with the chunk offset i, the block width and the chunk size
// limit. A trailing chunk no larger than width is left for a later pass. The
// first call of every pass has i == 0.
//
// All arithmetic stays within [0, n], so any n representable in D is safe.
func Schedule[D constraints.Integer](n D, merge func(i, width, limit D)) int {
	if n < 2 {
		return 0
	}

	passes := 0
	for width := D(1); ; width += width {
		passes++
		for i, limit := D(0), D(0); i < n; i += limit {
			limit = chunk(n, i, width)
			if limit > width {
				merge(i, width, limit)
			}
		}

		if finalPass(n, width) {
			break
		}
	}

	return passes
}

// chunk is min(n-i, 2*width). 2*width is only formed when it is at most n-i.
func chunk[D constraints.Integer](n, i, width D) D {
	rest := n - i
	if width > rest || width > rest-width {
		return rest
	}
	return width + width
}

// finalPass reports whether 2*width >= n. width < n holds for every pass.
func finalPass[D constraints.Integer](n, width D) bool {
	return width >= n-width
}

// BottomUp stably partitions [first, last) by pred and returns the start of
// the non-matching group. Blocks are merged bottom-up and each block's
// boundary is found by a linear scan.
func BottomUp[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	return BottomUpN(first, cursor.Distance(first, last), pred)
}

// BottomUpN is BottomUp over the n elements starting at first.
func BottomUpN[C cursor.BidirectionalOf[C, E], E any, D constraints.Integer](first C, n D, pred func(E) bool) C {
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
		l = findIfNot(next, m, pred)
		next = cursor.Advance(m, limit-width)
		r = findIfNot(m, next, pred)

		if !l.Equal(m) && !m.Equal(r) {
			Rotate(l, m, r)
		}
	})

	return cursor.Advance(l, cursor.Distance(m, r))
}
