package collection

// Partition moves the elements satisfying predicate to the front of buf and
// returns their count. It swaps from both ends, so neither group keeps its
// order.
func Partition[T any](buf []T, predicate func(T) bool) int {
	i, j := 0, len(buf)-1
	for i <= j {
		for i <= j && predicate(buf[i]) {
			i++
		}
		for i <= j && !predicate(buf[j]) {
			j--
		}
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return i
}

// StablePartition is Partition keeping the order inside both groups. It
// copies the rejected elements aside, using O(len(buf)) extra space.
func StablePartition[T any](buf []T, predicate func(T) bool) int {
	rejected := make([]T, 0, len(buf))

	n := 0
	for _, v := range buf {
		if predicate(v) {
			buf[n] = v
			n++
		} else {
			rejected = append(rejected, v)
		}
	}
	copy(buf[n:], rejected)

	return n
}
