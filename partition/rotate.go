package partition

import (
	"github.com/ar90n/spart/cursor"
)

// Reverse reverses the order of the elements in [first, last).
func Reverse[C cursor.Bidirectional[C]](first, last C) {
	for !first.Equal(last) {
		last = last.Prev()
		if first.Equal(last) {
			break
		}
		first.Swap(last)
		first = first.Next()
	}
}

// Rotate exchanges the adjacent blocks [first, middle) and [middle, last)
// using three reversals. The order inside each block is kept.
func Rotate[C cursor.Bidirectional[C]](first, middle, last C) {
	if first.Equal(middle) || middle.Equal(last) {
		return
	}

	Reverse(first, middle)
	Reverse(middle, last)
	Reverse(first, last)
}

// RotateSwap has the same effect as Rotate. It repeatedly swaps the shorter
// block with an equally long part of the other one, which needs fewer swaps
// than three reversals but jumps around the range.
func RotateSwap[C cursor.RandomAccess[C]](first, middle, last C) {
	i := middle.Sub(first)
	j := last.Sub(middle)
	if i == 0 || j == 0 {
		return
	}

	for i != j {
		if i > j {
			swapRange(middle.Add(-i), middle, j)
			i -= j
		} else {
			swapRange(middle.Add(-i), middle.Add(j-i), i)
			j -= i
		}
	}
	swapRange(middle.Add(-i), middle, i)
}

func swapRange[C cursor.RandomAccess[C]](a, b C, n int) {
	for k := 0; k < n; k++ {
		a.Add(k).Swap(b.Add(k))
	}
}
