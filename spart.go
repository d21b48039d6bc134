// Package spart stably partitions slices in place using constant extra
// space. The functions here are thin wrappers over package partition, which
// works on any cursor type.
package spart

import (
	"github.com/ar90n/spart/cursor"
	"github.com/ar90n/spart/partition"
)

// Func partitions s by pred and returns the number of matching elements,
// which is also the index of the first non-matching one.
type Func[E any] func(s []E, pred func(E) bool) int

type Algorithm[E any] struct {
	Name      string
	Partition Func[E]
}

// Algorithms lists the in-place stable partitioning algorithms.
func Algorithms[E any]() []Algorithm[E] {
	return []Algorithm[E]{
		{Name: "recursive", Partition: Recursive[[]E, E]},
		{Name: "bottomup", Partition: BottomUp[[]E, E]},
		{Name: "bsearch", Partition: BSearch[[]E, E]},
		{Name: "natural", Partition: Natural[[]E, E]},
	}
}

// Names returns the names of Algorithms in order.
func Names() []string {
	algs := Algorithms[struct{}]()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.Name
	}
	return names
}

func Lookup[E any](name string) (Algorithm[E], error) {
	for _, alg := range Algorithms[E]() {
		if alg.Name == name {
			return alg, nil
		}
	}
	return Algorithm[E]{}, newUnknownAlgorithmError(name)
}

func Recursive[S ~[]E, E any](s S, pred func(E) bool) int {
	return partition.Recursive(cursor.Begin([]E(s)), cursor.End([]E(s)), pred).Index()
}

func BottomUp[S ~[]E, E any](s S, pred func(E) bool) int {
	return partition.BottomUp(cursor.Begin([]E(s)), cursor.End([]E(s)), pred).Index()
}

func BSearch[S ~[]E, E any](s S, pred func(E) bool) int {
	return partition.BSearch(cursor.Begin([]E(s)), cursor.End([]E(s)), pred).Index()
}

func Natural[S ~[]E, E any](s S, pred func(E) bool) int {
	return partition.Natural(cursor.Begin([]E(s)), cursor.End([]E(s)), pred).Index()
}

// Rotate moves s[middle:] in front of s[:middle].
func Rotate[S ~[]E, E any](s S, middle int) {
	partition.Rotate(cursor.Begin([]E(s)), cursor.Begin([]E(s)).Add(middle), cursor.End([]E(s)))
}

// PartitionPoint returns the index of the first element of s not satisfying
// pred. s must already be partitioned by pred.
func PartitionPoint[S ~[]E, E any](s S, pred func(E) bool) int {
	return partition.PartitionPoint(cursor.Begin([]E(s)), cursor.End([]E(s)), pred).Index()
}
