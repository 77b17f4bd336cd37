package scale

import (
	"fmt"
	"math"

	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/dist"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
)

// Law maps a normalized position t in [0, 1] to a domain value and back.
type Law interface {
	Name() string
	ToValue(t float64) float64
	ToPosition(x float64) float64
}

type Linear struct {
	Min float64
	Max float64
}

func (l Linear) Name() string { return LawLinear }

func (l Linear) ToValue(t float64) float64 {
	return utils.Lerp(l.Min, l.Max, t)
}

func (l Linear) ToPosition(x float64) float64 {
	return utils.LerpInv(x, l.Min, l.Max)
}

// Log spends equal slider distance on equal multiplicative changes, Min must be > 0.
type Log struct {
	Min float64
	Max float64
}

func (l Log) Name() string { return LawLog }

func (l Log) ToValue(t float64) float64 {
	return math.Exp(utils.Lerp(math.Log(l.Min), math.Log(l.Max), t))
}

func (l Log) ToPosition(x float64) float64 {
	return utils.LerpInv(math.Log(x), math.Log(l.Min), math.Log(l.Max))
}

// Percentile places values by their rank under a log-normal model.
type Percentile struct {
	Model model.LogNormal
}

func (p Percentile) Name() string { return LawPercentile }

func (p Percentile) ToValue(t float64) float64 {
	return dist.LogNormalQuantile(t, p.Model.Mu, p.Model.Sigma)
}

func (p Percentile) ToPosition(x float64) float64 {
	return dist.LogNormalCdf(x, p.Model.Mu, p.Model.Sigma)
}

func ParseLaw(name string, min, max float64, fit model.LogNormal) (Law, error) {
	switch name {
	case LawLinear:
		return Linear{Min: min, Max: max}, nil
	case LawLog, "":
		if !(min > 0) {
			return nil, fmt.Errorf("%w: log scale needs min > 0, got %v", common.ErrorInvalidScale, min)
		}
		return Log{Min: min, Max: max}, nil
	case LawPercentile:
		if !(fit.Sigma > 0) || !utils.IsFinite(fit.Mu) {
			return nil, fmt.Errorf("%w: percentile scale needs a fitted model, got %+v", common.ErrorInvalidScale, fit)
		}
		return Percentile{Model: fit}, nil
	default:
		return nil, fmt.Errorf("%w: unknown scale %q", common.ErrorInvalidScale, name)
	}
}
