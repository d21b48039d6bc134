package spartest

import (
	"math/bits"

	"github.com/cockroachdb/errors"

	"github.com/ar90n/spart/constraints"
	"github.com/ar90n/spart/partition"
)

// Loop runs the bottom-up merge schedule for n elements without touching any
// data and checks its bookkeeping: every chunk lies inside [0, n), has a
// right block no wider than the left one, the last merge spans the whole
// range and the pass count is ceil(log2 n).
func Loop[D constraints.Integer](n D) (passes int, err error) {
	var lastI, lastLimit D
	merged := false

	passes = partition.Schedule(n, func(i, width, limit D) {
		if err != nil {
			return
		}
		switch {
		case i < 0 || i >= n || limit > n-i:
			err = errors.Newf("chunk at %d of size %d exceeds %d", i, limit, n)
		case limit <= width || limit-width > width:
			err = errors.Newf("chunk of size %d at width %d", limit, width)
		}
		lastI, lastLimit, merged = i, limit, true
	})
	if err != nil || n < 2 {
		return passes, err
	}

	if !merged || lastI != 0 || lastLimit != n {
		return passes, errors.Newf("last merge [%d,+%d) does not span %d", lastI, lastLimit, n)
	}
	if want := bits.Len64(uint64(n - 1)); passes != want {
		return passes, errors.Newf("%d passes for %d, want %d", passes, n, want)
	}
	return passes, nil
}

// CheckLoops runs Loop for sizes around the limits of the 8 and 16 bit
// integer types.
func CheckLoops() error {
	for _, f := range []func() error{
		checkLoops[int8],
		checkLoops[uint8],
		checkLoops[int16],
		checkLoops[uint16],
	} {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

func checkLoops[D constraints.Integer]() error {
	max := constraints.MaxOf[D]()
	for _, n := range []D{2, 3, 4, 5, max/2 - 2, max/2 - 1, max / 2, max/2 + 1, max/2 + 2, max - 2, max - 1, max} {
		if _, err := Loop(n); err != nil {
			return errors.Wrapf(err, "%T(%d)", n, n)
		}
	}
	return nil
}
