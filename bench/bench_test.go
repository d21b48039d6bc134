package bench

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ar90n/spart"
	"github.com/ar90n/spart/spartest"
)

func countTrue(items []Item) int {
	n := 0
	for _, item := range items {
		if item.Value {
			n++
		}
	}
	return n
}

func Test_Fill(t *testing.T) {
	type TestCase struct {
		Distribution Distribution
		Expected     string
	}

	for _, tc := range []TestCase{
		{Distribution: AllFalse, Expected: "FFFFFFFF"},
		{Distribution: AllTrue, Expected: "TTTTTTTT"},
		{Distribution: Split, Expected: "FFFFFTTT"},
		{Distribution: Alternating, Expected: "FTFTFTFT"},
	} {
		t.Run(string(tc.Distribution), func(t *testing.T) {
			items := make([]Item, 8)
			require.NoError(t, tc.Distribution.Fill(items, nil))
			assert.Equal(t, tc.Expected, spartest.Format(items))
			for i, item := range items {
				assert.Equal(t, i, item.ID)
			}
		})
	}

	items := make([]Item, 10000)
	require.NoError(t, Random.Fill(items, rand.New(rand.NewSource(1))))
	assert.InDelta(t, 5000, countTrue(items), 500)

	err := Distribution("zigzag").Fill(items, nil)
	assert.True(t, errors.Is(err, ErrUnknownDistribution))
}

func Test_Counter(t *testing.T) {
	var c Counter
	pred := c.Wrap(spartest.Pred)

	items := spartest.NewItems(100)
	m := spart.BottomUp(items, pred)
	assert.Equal(t, 0, m)
	assert.Positive(t, c.Count())

	c.Reset()
	assert.Zero(t, c.Count())
}

func Test_LoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
size: 1000
distributions: [random, alternating]
algorithms: [bsearch]
`))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Size)
	assert.Equal(t, []Distribution{Random, Alternating}, cfg.Distributions)
	assert.Equal(t, []string{"bsearch"}, cfg.Algorithms)
	assert.Equal(t, DefaultConfig().Seed, cfg.Seed)
	assert.Equal(t, []string{BaselineBuffered}, cfg.Baselines)

	cfg, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	for _, doc := range []string{
		"size: -1",
		"distributions: [zigzag]",
		"algorithms: [quick]",
		"baselines: [std]",
		"distributions: []",
	} {
		_, err := LoadConfig(strings.NewReader(doc))
		assert.True(t, errors.Is(err, ErrInvalidConfig), "%s: %v", doc, err)
	}

	_, err = LoadConfig(strings.NewReader("sizes: 10"))
	assert.Error(t, err)
}

func Test_DecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("size: -1\nalgorithms: [natural]\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Size)
	assert.Equal(t, []string{"natural"}, cfg.Algorithms)
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))

	cfg.Size = 10
	assert.NoError(t, cfg.Validate())

	_, err = DecodeConfig(strings.NewReader("sizes: 10"))
	assert.Error(t, err)
}

func Test_Runner(t *testing.T) {
	cfg := Config{
		Size:          2000,
		Seed:          3,
		Distributions: Distributions(),
		Algorithms:    spart.Names(),
		Baselines:     []string{BaselineBuffered, BaselineUnstable},
	}

	runner, err := NewRunner(cfg, zerolog.Nop())
	require.NoError(t, err)

	results, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Distributions)*(len(cfg.Algorithms)+len(cfg.Baselines)))

	boundaries := map[Distribution]int{}
	for _, res := range results {
		if want, ok := boundaries[res.Distribution]; ok {
			assert.Equal(t, want, res.Boundary, "%s/%s", res.Distribution, res.Algorithm)
		} else {
			boundaries[res.Distribution] = res.Boundary
		}
		assert.Positive(t, res.Predicates, "%s/%s", res.Distribution, res.Algorithm)
	}
	assert.Equal(t, 0, boundaries[AllFalse])
	assert.Equal(t, cfg.Size, boundaries[AllTrue])
	assert.Equal(t, cfg.Size/2-1, boundaries[Split])
	assert.Equal(t, cfg.Size/2, boundaries[Alternating])

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, results))
	out := buf.String()
	assert.Contains(t, out, "Timing all-false:\n")
	assert.Contains(t, out, "Timing random:\n")
	assert.Equal(t, len(results)+2*len(cfg.Distributions)-1, strings.Count(out, "\n"))

	buf.Reset()
	require.NoError(t, WriteYAML(&buf, results))
	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, len(results))
	assert.Equal(t, "buffered", decoded[0]["algorithm"])
}

func Test_RunnerCanceled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 10

	runner, err := NewRunner(cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkPartition_Random_100000(b *testing.B) {
	benchmarkPartition(b, Random, 100000)
}

func BenchmarkPartition_Alternating_10000(b *testing.B) {
	benchmarkPartition(b, Alternating, 10000)
}

func benchmarkPartition(b *testing.B, d Distribution, n int) {
	ref := make([]Item, n)
	if err := d.Fill(ref, rand.New(rand.NewSource(1))); err != nil {
		b.Fatal(err)
	}
	data := make([]Item, n)

	for _, alg := range spart.Algorithms[Item]() {
		b.Run(alg.Name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				alg.Partition(data, spartest.Pred)
			}
		})
	}
}
