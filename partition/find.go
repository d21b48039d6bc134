package partition

import (
	"github.com/ar90n/spart/cursor"
)

// findIf returns the first position in [first, last) whose element satisfies
// pred, or last.
func findIf[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	for !first.Equal(last) && !pred(first.Value()) {
		first = first.Next()
	}
	return first
}

// findIfNot returns the first position in [first, last) whose element does
// not satisfy pred, or last.
func findIfNot[C cursor.BidirectionalOf[C, E], E any](first, last C, pred func(E) bool) C {
	for !first.Equal(last) && pred(first.Value()) {
		first = first.Next()
	}
	return first
}

// single partitions a range of exactly one element.
func single[C cursor.BidirectionalOf[C, E], E any](first C, pred func(E) bool) C {
	if pred(first.Value()) {
		return first.Next()
	}
	return first
}
