package spartest

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/ar90n/spart"
	"github.com/ar90n/spart/collection"
)

// CheckAll partitions every assignment of n items with each of algs and
// checks the results. It stops at the first failure or when ctx is done.
func CheckAll(ctx context.Context, algs []spart.Algorithm[Item], n int) error {
	items := NewItems(n)
	ref := make([]Item, n)
	after := make([]Item, n)

	for {
		copy(ref, items)
		refBoundary := collection.StablePartition(ref, Pred)

		for _, alg := range algs {
			copy(after, items)
			m := alg.Partition(after, Pred)
			if err := checkAgainst(items, ref, refBoundary, after, m); err != nil {
				return errors.Wrapf(err, "%s on %s", alg.Name, Format(items))
			}
		}

		if !Increment(items) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Exhaustive runs CheckAll for every size in [0, maxSize) on at most procs
// goroutines, or one per CPU when procs is not positive. The first failure cancels the remaining sizes and is
// returned. If ctx is done before all sizes pass, ctx.Err() is returned.
func Exhaustive(ctx context.Context, algs []spart.Algorithm[Item], maxSize int, procs int) error {
	if procs <= 0 {
		procs = runtime.NumCPU()
	}

	p := pool.New().
		WithMaxGoroutines(procs).
		WithErrors().
		WithFirstError().
		WithContext(ctx).
		WithCancelOnError()

	// Largest sizes dominate, start them first.
	for n := maxSize - 1; n >= 0; n-- {
		n := n
		p.Go(func(ctx context.Context) error {
			err := CheckAll(ctx, algs, n)
			if ctx.Err() != nil {
				// Canceled by another size's failure or by the caller.
				return nil
			}
			return err
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
