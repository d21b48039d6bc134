package spart

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	ID    int
	Value bool
}

func isSet(p pair) bool { return p.Value }

type pairs []pair

func TestAlgorithms(t *testing.T) {
	type TestCase struct {
		Values   []bool
		Expected []int
		Boundary int
	}

	for _, alg := range Algorithms[pair]() {
		t.Run(alg.Name, func(t *testing.T) {
			for c, tc := range []TestCase{
				{Values: nil, Expected: []int{}, Boundary: 0},
				{Values: []bool{true}, Expected: []int{0}, Boundary: 1},
				{Values: []bool{false}, Expected: []int{0}, Boundary: 0},
				{Values: []bool{false, true, false, true}, Expected: []int{1, 3, 0, 2}, Boundary: 2},
				{Values: []bool{true, true, false, false}, Expected: []int{0, 1, 2, 3}, Boundary: 2},
				{Values: []bool{false, false, true, true, true}, Expected: []int{2, 3, 4, 0, 1}, Boundary: 3},
				{Values: []bool{true, false, true, false, false, true, true}, Expected: []int{0, 2, 5, 6, 1, 3, 4}, Boundary: 4},
			} {
				t.Run(fmt.Sprint(c), func(t *testing.T) {
					s := make([]pair, len(tc.Values))
					for i, v := range tc.Values {
						s[i] = pair{ID: i, Value: v}
					}

					m := alg.Partition(s, isSet)
					assert.Equal(t, tc.Boundary, m)

					got := []int{}
					for _, p := range s {
						got = append(got, p.ID)
					}
					assert.Equal(t, tc.Expected, got)
				})
			}
		})
	}
}

func TestNamedSliceType(t *testing.T) {
	s := pairs{{0, false}, {1, true}, {2, true}}
	assert.Equal(t, 2, Natural(s, isSet))
	assert.Equal(t, pairs{{1, true}, {2, true}, {0, false}}, s)
	assert.Equal(t, 2, PartitionPoint(s, isSet))
}

func TestRotate(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}
	Rotate(s, 2)
	assert.Equal(t, []int{2, 3, 4, 0, 1}, s)

	Rotate(s, 0)
	Rotate(s, len(s))
	assert.Equal(t, []int{2, 3, 4, 0, 1}, s)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		alg, err := Lookup[int](name)
		require.NoError(t, err)
		assert.Equal(t, name, alg.Name)
	}

	_, err := Lookup[int]("quick")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	assert.Contains(t, err.Error(), `"quick"`)
}
