package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/constraint"
	"github.com/uyouii/rangefield/dist"
	"github.com/uyouii/rangefield/field"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/scale"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the field configuration of the height and income sliders
type Config struct {
	Height HeightConfig `toml:"height" yaml:"height"`
	Income IncomeConfig `toml:"income" yaml:"income"`
}

// HeightConfig holds the height domain in cm and the group distributions drawn behind it
type HeightConfig struct {
	Min           float64               `toml:"min" yaml:"min"`
	Max           float64               `toml:"max" yaml:"max"`
	Step          float64               `toml:"step" yaml:"step"`
	AnchorPath    string                `toml:"anchor_path" yaml:"anchor_path"`
	Distributions []model.NamedGaussian `toml:"distributions" yaml:"distributions"`
}

// IncomeConfig holds the income domain in dollars and the log-normal source
type IncomeConfig struct {
	Min       float64 `toml:"min" yaml:"min"`
	Max       float64 `toml:"max" yaml:"max"`
	Step      float64 `toml:"step" yaml:"step"`
	Scale     string  `toml:"scale" yaml:"scale"`
	MedianUSD float64 `toml:"median_usd" yaml:"median_usd"`
	P90USD    float64 `toml:"p90_usd" yaml:"p90_usd"`
}

func Default() *Config {
	return &Config{
		Height: HeightConfig{
			Min:        constraint.DefaultMinCm,
			Max:        constraint.DefaultMaxCm,
			Step:       constraint.DefaultStepCm,
			AnchorPath: field.DefaultAnchorPath,
			Distributions: []model.NamedGaussian{
				{Name: "men", Gaussian: model.Gaussian{Mean: 175.4, StdDev: 7.6}},
				{Name: "women", Gaussian: model.Gaussian{Mean: 161.7, StdDev: 7.1}},
			},
		},
		Income: IncomeConfig{
			Min:       scale.MinIncome,
			Max:       scale.MaxIncome,
			Step:      scale.DefaultStepDollars,
			Scale:     scale.DefaultLaw,
			MedianUSD: scale.DefaultMedianUSD,
			P90USD:    scale.DefaultP90USD,
		},
	}
}

// Load reads a .toml, .yaml or .yml file over the defaults and validates the result.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := utils.GetLogger(ctx)
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			logger.Warn("unknown config keys ignored", zap.String("path", path), zap.Any("keys", undecoded))
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", common.ErrorInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("config validate failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	logger.Info("config loaded", zap.String("path", path), zap.Any("config", cfg))
	return cfg, nil
}

// Validate checks the domains and the income model. Invalid height distributions are not
// an error here, the chart reports them.
func (c *Config) Validate() error {
	var errs error
	if err := c.HeightBounds().Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("height: %w", err))
	}
	if !(c.Income.Min > 0) || !(c.Income.Min < c.Income.Max) {
		errs = multierr.Append(errs, fmt.Errorf("income: domain [%v, %v] must be positive and ordered",
			c.Income.Min, c.Income.Max))
	}
	if c.Income.Step < 0 {
		errs = multierr.Append(errs, fmt.Errorf("income: step %v must not be negative", c.Income.Step))
	}
	if _, _, err := c.IncomeMapper(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("income: %w", err))
	}
	if errs != nil {
		return fmt.Errorf("%w: %v", common.ErrorInvalidConfig, errs)
	}
	return nil
}

func (c *Config) HeightBounds() constraint.Bounds {
	return constraint.Bounds{
		Min:  c.Height.Min,
		Max:  c.Height.Max,
		Step: c.Height.Step,
	}
}

func (c *Config) IncomeSource() model.LogNormalSource {
	return model.LogNormalSource{
		MedianUSD: c.Income.MedianUSD,
		P90USD:    c.Income.P90USD,
	}
}

func (c *Config) IncomeMapper() (*scale.Mapper, model.LogNormal, error) {
	fit, err := dist.FitSource(c.IncomeSource())
	if err != nil {
		return nil, model.LogNormal{}, err
	}
	mapper, err := scale.NewMapper(c.Income.Scale, c.Income.Min, c.Income.Max, c.Income.Step, fit)
	if err != nil {
		return nil, model.LogNormal{}, err
	}
	return mapper, fit, nil
}
