// Package config resolves mstgen settings from, in increasing priority:
// built-in defaults, a TOML file, MSTGEN_* environment variables, and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/sweep"
)

// DefaultFile is the config file read when --config is not given.
// A missing default file is not an error; a missing explicit one is.
const DefaultFile = "mstgen.toml"

// EnvPrefix prefixes environment overrides, e.g. MSTGEN_WEIGHT_HIGH=100.
const EnvPrefix = "MSTGEN_"

// ErrInvalid reports a setting that fails validation in Load.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings of the mstgen commands.
type Config struct {
	// generate
	Size     int     `koanf:"size"`
	Density  float64 `koanf:"density"`
	Edges    int     `koanf:"edges"` // exact edge count; 0 derives it from Density
	Output   string  `koanf:"output"`
	Diagnose bool    `koanf:"diagnose"`

	// sweep
	Dir       string    `koanf:"dir"`
	Sizes     []int     `koanf:"sizes"`
	Densities []float64 `koanf:"densities"`
	Workers   int       `koanf:"workers"`
	FailFast  bool      `koanf:"fail_fast"`
	Verify    bool      `koanf:"verify"`

	// shared
	Seed   int64        `koanf:"seed"`
	Weight WeightConfig `koanf:"weight"`
}

// WeightConfig configures the weight assigner.
type WeightConfig struct {
	Low     float64 `koanf:"low"`
	High    float64 `koanf:"high"`
	Integer bool    `koanf:"integer"`
	Retries int     `koanf:"retries"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Size:      10,
		Density:   0.1,
		Output:    "-",
		Diagnose:  true,
		Dir:       "graphs/random",
		Sizes:     []int{10, 100, 1000},
		Densities: []float64{0.01, 0.1, 0.25, 0.5, 1.0},
		Verify:    true,
		Weight: WeightConfig{
			Low:     builder.DefaultWeightLow,
			High:    builder.DefaultWeightHigh,
			Retries: builder.DefaultMaxWeightRetries,
		},
	}
}

// defaultMap is Defaults as a nested koanf map.
func defaultMap() map[string]interface{} {
	d := Defaults()

	return map[string]interface{}{
		"size":      d.Size,
		"density":   d.Density,
		"edges":     d.Edges,
		"output":    d.Output,
		"diagnose":  d.Diagnose,
		"dir":       d.Dir,
		"sizes":     d.Sizes,
		"densities": d.Densities,
		"workers":   d.Workers,
		"fail_fast": d.FailFast,
		"verify":    d.Verify,
		"seed":      d.Seed,
		"weight": map[string]interface{}{
			"low":     d.Weight.Low,
			"high":    d.Weight.High,
			"integer": d.Weight.Integer,
			"retries": d.Weight.Retries,
		},
	}
}

// Load resolves the configuration. f may be nil; otherwise its "config" flag
// (if defined) names the TOML file and every changed flag overrides the
// lower layers.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(defaultMap()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path, explicit := DefaultFile, false
	if f != nil {
		if fl := f.Lookup("config"); fl != nil {
			path, explicit = fl.Value.String(), fl.Changed
		}
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	// 3. Environment variables
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, func(fl *pflag.Flag) (string, interface{}) {
			return flagKey(fl.Name), posflag.FlagVal(f, fl)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects values no command could run with. Range and density
// checks are left to builder.Generate, which reports them per configuration.
func (c *Config) validate() error {
	if c.Weight.Retries < 1 {
		return fmt.Errorf("%w: weight.retries must be >= 1, got %d", ErrInvalid, c.Weight.Retries)
	}
	if c.Edges < 0 {
		return fmt.Errorf("%w: edges must be >= 0, got %d", ErrInvalid, c.Edges)
	}

	return nil
}

// Grid returns the sweep grid.
func (c *Config) Grid() sweep.Grid {
	return sweep.Grid{Sizes: c.Sizes, Densities: c.Densities}
}

// BuilderOptions translates the weight settings (and the seed, when set)
// into builder options. A zero Retries (a Config not produced by Load) keeps
// the builder default.
func (c *Config) BuilderOptions(withSeed bool) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithWeightRange(c.Weight.Low, c.Weight.High)}
	if c.Weight.Integer {
		opts = append(opts, builder.WithIntegerWeights())
	}
	if c.Weight.Retries > 0 {
		opts = append(opts, builder.WithMaxWeightRetries(c.Weight.Retries))
	}
	if withSeed && c.Seed != 0 {
		opts = append(opts, builder.WithSeed(c.Seed))
	}

	return opts
}

// flagKey maps flag names to config keys: "weight-low" → "weight.low",
// "fail-fast" → "fail_fast".
func flagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "weight-"); ok {
		return "weight." + rest
	}

	return strings.ReplaceAll(name, "-", "_")
}

// envKeyValue maps MSTGEN_WEIGHT_LOW → weight.low and splits comma-separated
// list values (MSTGEN_SIZES=10,100).
func envKeyValue(key, value string) (string, interface{}) {
	k := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if rest, ok := strings.CutPrefix(k, "weight_"); ok {
		k = "weight." + rest
	}
	if k == "sizes" || k == "densities" {
		return k, strings.Split(value, ",")
	}

	return k, value
}

// mapProvider exposes a plain map as a koanf provider.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
