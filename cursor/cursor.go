// Package cursor describes positions into a sequence by what they can do.
//
// A cursor is a small value type. Bidirectional cursors step forwards and
// backwards by one element; random-access cursors can also jump by an
// arbitrary offset and measure the distance between two positions in
// constant time. Algorithms state the capability they need through the
// generic constraints in this package, so a bidirectional-only sequence
// cannot be handed to an algorithm that relies on random access.
//
// Cursors into the same sequence compare with Equal. Comparing cursors of
// different sequences, or stepping past either end, is undefined.
package cursor

import (
	"github.com/ar90n/spart/constraints"
)

// Bidirectional is a position that can step by one in either direction and
// exchange its element with the element at another position.
type Bidirectional[C any] interface {
	Next() C
	Prev() C
	Equal(other C) bool
	Swap(other C)
}

// RandomAccess is a Bidirectional position that also supports constant time
// offsets and distances.
type RandomAccess[C any] interface {
	Bidirectional[C]
	Add(n int) C
	Sub(other C) int
}

// BidirectionalOf is a Bidirectional position whose elements are of type E.
type BidirectionalOf[C, E any] interface {
	Bidirectional[C]
	Value() E
}

// RandomAccessOf is a RandomAccess position whose elements are of type E.
type RandomAccessOf[C, E any] interface {
	RandomAccess[C]
	Value() E
}

// Advance steps c forward n times. n must not be negative.
func Advance[C Bidirectional[C], D constraints.Integer](c C, n D) C {
	for k := D(0); k < n; k++ {
		c = c.Next()
	}
	return c
}

// Distance counts the steps from first to last. last must be reachable from
// first.
func Distance[C Bidirectional[C]](first, last C) int {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}
