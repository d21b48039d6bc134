// Package bench times the partitioning algorithms on large inputs and
// counts the predicate calls each of them makes.
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/ar90n/spart"
	"github.com/ar90n/spart/collection"
	"github.com/ar90n/spart/spartest"
)

type Item = spartest.Item

type Result struct {
	Distribution Distribution  `yaml:"distribution"`
	Algorithm    string        `yaml:"algorithm"`
	Elapsed      time.Duration `yaml:"elapsed"`
	Predicates   int64         `yaml:"predicates"`
	Boundary     int           `yaml:"boundary"`
}

type Runner struct {
	cfg    Config
	algs   []spart.Algorithm[Item]
	logger zerolog.Logger
}

func NewRunner(cfg Config, logger zerolog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	algs := make([]spart.Algorithm[Item], 0, len(cfg.Baselines)+len(cfg.Algorithms))
	for _, name := range cfg.Baselines {
		algs = append(algs, baseline(name))
	}
	for _, name := range cfg.Algorithms {
		alg, err := spart.Lookup[Item](name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}

	return &Runner{cfg: cfg, algs: algs, logger: logger}, nil
}

func baseline(name string) spart.Algorithm[Item] {
	if name == BaselineUnstable {
		return spart.Algorithm[Item]{Name: name, Partition: collection.Partition[Item]}
	}
	return spart.Algorithm[Item]{Name: name, Partition: collection.StablePartition[Item]}
}

// Run times every configured algorithm on every configured distribution.
// Each run gets its own copy of the input.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	input := make([]Item, r.cfg.Size)
	work := make([]Item, r.cfg.Size)

	var counter Counter
	pred := counter.Wrap(spartest.Pred)

	results := make([]Result, 0, len(r.cfg.Distributions)*len(r.algs))
	for _, d := range r.cfg.Distributions {
		if err := d.Fill(input, rng); err != nil {
			return nil, err
		}
		r.logger.Info().Str("distribution", string(d)).Int("size", len(input)).Msg("timing")

		for _, alg := range r.algs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			copy(work, input)
			counter.Reset()

			start := time.Now()
			m := alg.Partition(work, pred)
			elapsed := time.Since(start)

			res := Result{
				Distribution: d,
				Algorithm:    alg.Name,
				Elapsed:      elapsed,
				Predicates:   counter.Count(),
				Boundary:     m,
			}
			r.logger.Debug().
				Str("algorithm", res.Algorithm).
				Dur("elapsed", res.Elapsed).
				Int64("predicates", res.Predicates).
				Msg("done")
			results = append(results, res)
		}
	}

	return results, nil
}
