package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/field"
	"github.com/uyouii/rangefield/scale"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const tomlConfig = `
[height]
min = 140
max = 210
step = 1

[[height.distributions]]
name = "men"
mean = 178
stddev = 7

[[height.distributions]]
name = "women"
mean = 164
stddev = 6.5

[income]
scale = "percentile"
median_usd = 65000
p90_usd = 160000
`

const yamlConfig = `
height:
  min: 130
  max: 215
  distributions:
    - name: men
      mean: 176
      stddev: 7.2
income:
  scale: linear
  step: 500
`

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 120.0, cfg.HeightBounds().Min)
	assert.Len(t, cfg.Height.Distributions, 2)

	mapper, fit, err := cfg.IncomeMapper()
	require.NoError(t, err)
	assert.Equal(t, scale.LawLog, mapper.Law.Name())
	assert.Greater(t, fit.Sigma, 0.0)
}

func TestLoadToml(t *testing.T) {
	defer utils.SetLogger(zaptest.NewLogger(t))()

	cfg, err := Load(context.Background(), writeFile(t, "fields.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, 140.0, cfg.Height.Min)
	assert.Equal(t, 210.0, cfg.Height.Max)
	require.Len(t, cfg.Height.Distributions, 2)
	assert.Equal(t, "women", cfg.Height.Distributions[1].Name)
	assert.Equal(t, 6.5, cfg.Height.Distributions[1].StdDev)
	assert.Equal(t, field.DefaultAnchorPath, cfg.Height.AnchorPath)

	assert.Equal(t, "percentile", cfg.Income.Scale)
	assert.Equal(t, 65_000.0, cfg.Income.MedianUSD)
	// untouched keys keep their defaults
	assert.Equal(t, float64(scale.MaxIncome), cfg.Income.Max)
	assert.Equal(t, float64(scale.DefaultStepDollars), cfg.Income.Step)
}

func TestLoadYaml(t *testing.T) {
	defer utils.SetLogger(zaptest.NewLogger(t))()

	cfg, err := Load(context.Background(), writeFile(t, "fields.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, 130.0, cfg.Height.Min)
	assert.Equal(t, 1.0, cfg.Height.Step)
	require.Len(t, cfg.Height.Distributions, 1)
	assert.Equal(t, 176.0, cfg.Height.Distributions[0].Mean)
	assert.Equal(t, "linear", cfg.Income.Scale)
	assert.Equal(t, 500.0, cfg.Income.Step)
}

func TestLoadErrors(t *testing.T) {
	defer utils.SetLogger(zaptest.NewLogger(t))()
	ctx := context.Background()

	_, err := Load(ctx, writeFile(t, "fields.json", "{}"))
	assert.True(t, errors.Is(err, common.ErrorInvalidConfig))

	_, err = Load(ctx, writeFile(t, "bad.toml", "[income]\nmedian_usd = 90000\np90_usd = 80000\n"))
	assert.True(t, errors.Is(err, common.ErrorInvalidConfig))

	_, err = Load(ctx, writeFile(t, "bad.yaml", "height:\n  min: 250\n"))
	assert.True(t, errors.Is(err, common.ErrorInvalidConfig))

	_, err = Load(ctx, writeFile(t, "unknown.yaml", "height:\n  minimum: 100\n"))
	assert.Error(t, err)

	_, err = Load(ctx, writeFile(t, "scale.toml", "[income]\nscale = \"cubic\"\n"))
	assert.True(t, errors.Is(err, common.ErrorInvalidConfig))

	_, err = Load(ctx, filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
