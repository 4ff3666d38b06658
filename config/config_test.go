package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/config"
)

// chdir moves into an empty temp dir so no stray mstgen.toml is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func flagSet() *pflag.FlagSet {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("config", config.DefaultFile, "")
	f.Int("size", 10, "")
	f.Float64("density", 0.1, "")
	f.StringSlice("sizes", nil, "")
	f.StringSlice("densities", nil, "")
	f.Int64("seed", 0, "")
	f.Float64("weight-high", builder.DefaultWeightHigh, "")
	f.Int("weight-retries", builder.DefaultMaxWeightRetries, "")
	f.Int("edges", 0, "")
	f.Bool("fail-fast", false, "")

	return f
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Size)
	assert.Equal(t, 0.1, cfg.Density)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "graphs/random", cfg.Dir)
	assert.Equal(t, []int{10, 100, 1000}, cfg.Sizes)
	assert.Len(t, cfg.Densities, 5)
	assert.True(t, cfg.Verify)
	assert.False(t, cfg.FailFast)
	assert.Equal(t, builder.DefaultWeightLow, cfg.Weight.Low)
	assert.Equal(t, builder.DefaultWeightHigh, cfg.Weight.High)
	assert.Equal(t, builder.DefaultMaxWeightRetries, cfg.Weight.Retries)
}

func TestLoad_Layers(t *testing.T) {
	dir := chdir(t)
	toml := `
sizes = [5, 50]
densities = [0.2, 0.4]
workers = 3
seed = 11

[weight]
low = 0.0
high = 100.0
integer = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte(toml), 0o644))

	// file layer only
	cfg, err := config.Load(flagSet())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 50}, cfg.Sizes)
	assert.Equal(t, []float64{0.2, 0.4}, cfg.Densities)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, 0.0, cfg.Weight.Low)
	assert.Equal(t, 100.0, cfg.Weight.High)
	assert.True(t, cfg.Weight.Integer)

	// env beats file
	t.Setenv("MSTGEN_SEED", "12")
	t.Setenv("MSTGEN_WEIGHT_HIGH", "200")
	t.Setenv("MSTGEN_SIZES", "7,8,9")
	cfg, err = config.Load(flagSet())
	require.NoError(t, err)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.Equal(t, 200.0, cfg.Weight.High)
	assert.Equal(t, []int{7, 8, 9}, cfg.Sizes)

	// flags beat env
	f := flagSet()
	require.NoError(t, f.Parse([]string{"--seed", "13", "--weight-high", "300", "--fail-fast", "--densities", "0.5,1", "--sizes", "3,4"}))
	cfg, err = config.Load(f)
	require.NoError(t, err)
	assert.Equal(t, int64(13), cfg.Seed)
	assert.Equal(t, 300.0, cfg.Weight.High)
	assert.True(t, cfg.FailFast)
	assert.Equal(t, []float64{0.5, 1}, cfg.Densities)
	assert.Equal(t, []int{3, 4}, cfg.Sizes)
	// keys no changed flag touches keep the lower layers
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 0.0, cfg.Weight.Low)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdir(t)

	f := flagSet()
	require.NoError(t, f.Parse([]string{"--config", filepath.Join(dir, "missing.toml")}))
	_, err := config.Load(f)
	require.Error(t, err, "explicit missing file")

	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("dir = \"out\"\n"), 0o644))
	f = flagSet()
	require.NoError(t, f.Parse([]string{"--config", path}))
	cfg, err := config.Load(f)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Dir)

	require.NoError(t, os.WriteFile(path, []byte("dir = [unterminated"), 0o644))
	_, err = config.Load(f)
	require.Error(t, err, "malformed file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Run("retries from file", func(t *testing.T) {
		dir := chdir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("[weight]\nretries = 0\n"), 0o644))
		_, err := config.Load(flagSet())
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("retries from env", func(t *testing.T) {
		chdir(t)
		t.Setenv("MSTGEN_WEIGHT_RETRIES", "-1")
		_, err := config.Load(flagSet())
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("retries from flag", func(t *testing.T) {
		chdir(t)
		f := flagSet()
		require.NoError(t, f.Parse([]string{"--weight-retries", "0"}))
		_, err := config.Load(f)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("negative edges", func(t *testing.T) {
		chdir(t)
		f := flagSet()
		require.NoError(t, f.Parse([]string{"--edges", "-3"}))
		_, err := config.Load(f)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("positive retries accepted", func(t *testing.T) {
		chdir(t)
		f := flagSet()
		require.NoError(t, f.Parse([]string{"--weight-retries", "1"}))
		cfg, err := config.Load(f)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Weight.Retries)
	})
}

func TestConfig_BuilderOptions(t *testing.T) {
	cfg := &config.Config{
		Seed:   5,
		Weight: config.WeightConfig{Low: 1, High: 3, Integer: true, Retries: 200},
	}

	// 3 integer weights in {1,2,3}: a 3-vertex complete graph fits exactly
	g, err := builder.Generate(3, 1, cfg.BuilderOptions(true)...)
	require.NoError(t, err)
	for _, e := range g.Edges {
		assert.Contains(t, []float64{1, 2, 3}, e.Weight)
	}

	// 6 edges cannot get distinct weights from 3 integers
	_, err = builder.Generate(4, 1, cfg.BuilderOptions(true)...)
	require.ErrorIs(t, err, builder.ErrWeightSpaceExhausted)

	// seeded option set is reproducible
	a, err := builder.Generate(3, 1, cfg.BuilderOptions(true)...)
	require.NoError(t, err)
	assert.Equal(t, g, a)

	assert.Len(t, cfg.BuilderOptions(false), 3)
	cfg.Seed = 0
	assert.Len(t, cfg.BuilderOptions(true), 3)
}

func TestConfig_Grid(t *testing.T) {
	cfg := &config.Config{Sizes: []int{2, 3}, Densities: []float64{0, 1}}
	assert.Len(t, cfg.Grid().Jobs(), 4)
}
