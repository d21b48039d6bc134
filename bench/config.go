package bench

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/ar90n/spart"
)

var ErrInvalidConfig = errors.New("invalid config")

// Baseline names accepted in Config.Baselines.
const (
	BaselineBuffered = "buffered"
	BaselineUnstable = "unstable"
)

type Config struct {
	Size          int            `yaml:"size"`
	Seed          int64          `yaml:"seed"`
	Distributions []Distribution `yaml:"distributions"`
	Algorithms    []string       `yaml:"algorithms"`
	Baselines     []string       `yaml:"baselines"`
}

// DefaultConfig times every algorithm against the buffered baseline on a
// million items for each distribution.
func DefaultConfig() Config {
	return Config{
		Size:          1000 * 1000,
		Seed:          1,
		Distributions: Distributions(),
		Algorithms:    spart.Names(),
		Baselines:     []string{BaselineBuffered},
	}
}

// DecodeConfig reads a YAML config without validating it. Fields missing
// from the document keep their DefaultConfig values; unknown fields are an
// error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	return cfg, nil
}

// LoadConfig is DecodeConfig followed by Validate.
func LoadConfig(r io.Reader) (Config, error) {
	cfg, err := DecodeConfig(r)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Size < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative size %d", c.Size)
	}
	if len(c.Distributions) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no distributions")
	}
	for _, d := range c.Distributions {
		if err := d.Validate(); err != nil {
			return errors.Mark(err, ErrInvalidConfig)
		}
	}
	for _, name := range c.Algorithms {
		if _, err := spart.Lookup[Item](name); err != nil {
			return errors.Mark(err, ErrInvalidConfig)
		}
	}
	for _, name := range c.Baselines {
		if name != BaselineBuffered && name != BaselineUnstable {
			return errors.Wrapf(ErrInvalidConfig, "unknown baseline %q", name)
		}
	}
	if len(c.Algorithms)+len(c.Baselines) == 0 {
		return errors.Wrap(ErrInvalidConfig, "nothing to run")
	}
	return nil
}
