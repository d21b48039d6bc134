package bench

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/ar90n/spart/spartest"
)

type Distribution string

const (
	AllFalse    Distribution = "all-false"
	AllTrue     Distribution = "all-true"
	Split       Distribution = "split"
	Alternating Distribution = "alternating"
	Random      Distribution = "random"
)

var ErrUnknownDistribution = errors.New("unknown distribution")

func Distributions() []Distribution {
	return []Distribution{AllFalse, AllTrue, Split, Alternating, Random}
}

func (d Distribution) Validate() error {
	for _, known := range Distributions() {
		if d == known {
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownDistribution, "%q", string(d))
}

// Fill assigns IDs 0..n-1 and values drawn from d to items. rng is only used
// by Random.
func (d Distribution) Fill(items []spartest.Item, rng *rand.Rand) error {
	if err := d.Validate(); err != nil {
		return err
	}

	n := len(items)
	for i := range items {
		items[i].ID = i
		switch d {
		case AllFalse:
			items[i].Value = false
		case AllTrue:
			items[i].Value = true
		case Split:
			items[i].Value = i > n/2
		case Alternating:
			items[i].Value = i%2 != 0
		case Random:
			items[i].Value = rng.Intn(2) == 1
		}
	}
	return nil
}
