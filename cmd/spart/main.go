package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/ar90n/spart"
	"github.com/ar90n/spart/bench"
	"github.com/ar90n/spart/spartest"
)

func newLogger(c *cli.Context) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "log-level")
	}

	out := zerolog.ConsoleWriter{Out: c.App.ErrWriter}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func startProfiler(profileOutputName string) (func(), error) {
	if profileOutputName == "" {
		return func() {}, nil
	}

	f, err := os.Create(profileOutputName)
	if err != nil {
		return nil, err
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func selectAlgorithms(names []string) ([]spart.Algorithm[spartest.Item], error) {
	if len(names) == 0 {
		return spart.Algorithms[spartest.Item](), nil
	}

	algs := make([]spart.Algorithm[spartest.Item], 0, len(names))
	for _, name := range names {
		alg, err := spart.Lookup[spartest.Item](name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

func verifyAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}

	algs, err := selectAlgorithms(c.StringSlice("algorithm"))
	if err != nil {
		return err
	}
	maxSize := c.Int("max-size")
	procs := int(c.Uint("procs"))

	if c.Bool("loop") {
		logger.Info().Msg("checking merge schedule near integer limits...")
		if err := spartest.CheckLoops(); err != nil {
			return err
		}
		logger.Info().Msg("done")
	}

	logger.Info().Int("max-size", maxSize).Int("procs", procs).Msg("verifying...")
	if err := spartest.Exhaustive(c.Context, algs, maxSize, procs); err != nil {
		return err
	}
	logger.Info().Msg("done")

	return nil
}

func loadBenchConfig(c *cli.Context) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if path := c.String("config"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer file.Close()

		if cfg, err = bench.DecodeConfig(file); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("size") {
		cfg.Size = c.Int("size")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("distribution") {
		cfg.Distributions = nil
		for _, d := range c.StringSlice("distribution") {
			cfg.Distributions = append(cfg.Distributions, bench.Distribution(d))
		}
	}
	if c.IsSet("algorithm") {
		cfg.Algorithms = c.StringSlice("algorithm")
	}
	if c.IsSet("baseline") {
		cfg.Baselines = c.StringSlice("baseline")
	}

	return cfg, cfg.Validate()
}

func benchAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}

	cfg, err := loadBenchConfig(c)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	stop, err := startProfiler(c.String("profile-output"))
	if err != nil {
		return err
	}
	results, err := runner.Run(c.Context)
	stop()
	if err != nil {
		return err
	}

	wtr := bufio.NewWriter(c.App.Writer)
	if err := writeResults(wtr, c.String("format"), results); err != nil {
		return err
	}
	return wtr.Flush()
}

func writeResults(w io.Writer, format string, results []bench.Result) error {
	switch format {
	case "table":
		return bench.WriteTable(w, results)
	case "yaml":
		return bench.WriteYAML(w, results)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}

func newApp() *cli.App {
	algorithmUsage := "algorithm to run (" + strings.Join(spart.Names(), ", ") + "), repeatable"

	return &cli.App{
		Name:     "spart",
		HelpName: "spart",
		Usage:    "verify and benchmark in-place stable partitioning",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "verify",
				Usage:     "check every algorithm on all boolean inputs up to a size",
				UsageText: "spart verify [command options]",
				Action:    verifyAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-size",
						Value: 20,
						Usage: "check sizes below this",
					},
					&cli.UintFlag{
						Name:  "procs",
						Value: 0,
						Usage: "number of goroutines, 0 for one per CPU",
					},
					&cli.StringSliceFlag{
						Name:  "algorithm",
						Usage: algorithmUsage,
					},
					&cli.BoolFlag{
						Name:  "loop",
						Usage: "also check the merge schedule near 8 and 16 bit limits",
					},
				},
			},
			{
				Name:      "bench",
				Usage:     "time algorithms and count predicate calls",
				UsageText: "spart bench [command options]",
				Action:    benchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file",
					},
					&cli.IntFlag{
						Name:  "size",
						Value: bench.DefaultConfig().Size,
						Usage: "number of items",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: bench.DefaultConfig().Seed,
						Usage: "seed for the random distribution",
					},
					&cli.StringSliceFlag{
						Name:  "distribution",
						Usage: "input distribution (all-false, all-true, split, alternating, random), repeatable",
					},
					&cli.StringSliceFlag{
						Name:  "algorithm",
						Usage: algorithmUsage,
					},
					&cli.StringSliceFlag{
						Name:  "baseline",
						Usage: "baseline to run first (buffered, unstable), repeatable",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "table",
						Usage: "output format (table, yaml)",
					},
					&cli.StringFlag{
						Name:  "profile-output",
						Usage: "profile output file",
					},
				},
			},
		},
	}
}

func main() {
	app := newApp()
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Fatal().Err(err).Msg("spart")
	}
}
