// Package spartest provides helpers for checking stable partitioning
// implementations against a buffered reference.
//
// # Overview
//
// Inputs are slices of [Item]. Every item carries an increasing ID next to
// the boolean Value that [Pred] partitions by, so stability and permutation
// can be checked independently of the values. [Increment] steps a slice
// through all 2^n assignments of Value, and [Check] compares one result
// against [collection.StablePartition].
//
// # Example Usage
//
//	items := spartest.NewItems(5)
//	for {
//		after := slices.Clone(items)
//		m := spart.Natural(after, spartest.Pred)
//		if err := spartest.Check(items, after, m); err != nil {
//			t.Fatal(err)
//		}
//		if !spartest.Increment(items) {
//			break
//		}
//	}
//
// [CheckAll] runs that loop for one size and a set of algorithms, and
// [Exhaustive] runs it for a range of sizes concurrently.
package spartest

import (
	"golang.org/x/exp/slices"

	"github.com/cockroachdb/errors"

	"github.com/ar90n/spart/collection"
)

var (
	ErrBoundaryMismatch     = errors.New("boundary differs from reference")
	ErrBoundaryInconsistent = errors.New("boundary does not split the result")
	ErrUnstable             = errors.New("relative order not preserved")
	ErrNotPermutation       = errors.New("result is not a permutation of the input")
)

// Item is a partitioned element. ID identifies it, Value decides its group.
type Item struct {
	ID    int
	Value bool
}

func Pred(item Item) bool {
	return item.Value
}

// NewItems returns n items with IDs 0..n-1, all false.
func NewItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i].ID = i
	}
	return items
}

// Increment treats the Values of items as a binary number, least significant
// first, and adds one. It returns false once the number wraps to all false.
func Increment(items []Item) bool {
	for i := range items {
		items[i].Value = !items[i].Value
		if items[i].Value {
			return true
		}
	}
	return false
}

// Check verifies that after, with the given boundary, is the stable
// partition of before by Pred. IDs in before must be increasing.
func Check(before, after []Item, boundary int) error {
	ref := make([]Item, len(before))
	copy(ref, before)
	refBoundary := collection.StablePartition(ref, Pred)

	return checkAgainst(before, ref, refBoundary, after, boundary)
}

func checkAgainst(before, ref []Item, refBoundary int, after []Item, boundary int) error {
	if boundary == refBoundary && slices.Equal(ref, after) {
		return nil
	}

	if len(after) != len(before) {
		return errors.Wrapf(ErrNotPermutation, "length %d, want %d", len(after), len(before))
	}
	if boundary != refBoundary {
		return errors.Wrapf(ErrBoundaryMismatch, "got %d, want %d", boundary, refBoundary)
	}
	for i, item := range after {
		if Pred(item) != (i < boundary) {
			return errors.Wrapf(ErrBoundaryInconsistent, "item %d at %d with boundary %d", item.ID, i, boundary)
		}
	}
	if err := checkPermutation(before, after); err != nil {
		return err
	}
	for i := 1; i < len(after); i++ {
		if i != boundary && after[i-1].ID >= after[i].ID {
			return errors.Wrapf(ErrUnstable, "item %d before item %d", after[i-1].ID, after[i].ID)
		}
	}

	// IDs in before were not increasing.
	return errors.Wrapf(ErrUnstable, "result differs from reference")
}

func checkPermutation(before, after []Item) error {
	seen := make(map[Item]int, len(before))
	for _, item := range before {
		seen[item]++
	}
	for _, item := range after {
		if seen[item] == 0 {
			return errors.Wrapf(ErrNotPermutation, "unexpected item %+v", item)
		}
		seen[item]--
	}
	return nil
}

// Format renders the Values of items as a string of T and F.
func Format(items []Item) string {
	b := make([]byte, len(items))
	for i, item := range items {
		b[i] = 'F'
		if item.Value {
			b[i] = 'T'
		}
	}
	return string(b)
}
