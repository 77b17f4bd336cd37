package dist

import (
	"fmt"
	"math"

	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormalFit fits a log-normal from its median and 90th percentile.
// p90 must be strictly above median, otherwise sigma would not be positive.
func LogNormalFit(median, p90 float64) (model.LogNormal, error) {
	if !utils.IsFinite(median) || !utils.IsFinite(p90) {
		return model.LogNormal{}, fmt.Errorf("%w: non-numeric median/p90", common.ErrorInvalidDistribution)
	}
	if median <= 0 {
		return model.LogNormal{}, fmt.Errorf("%w: median %v must be > 0", common.ErrorInvalidDistribution, median)
	}
	if p90 <= median {
		return model.LogNormal{}, fmt.Errorf("%w: p90 %v must be > median %v",
			common.ErrorInvalidDistribution, p90, median)
	}

	mu := math.Log(median)
	sigma := (math.Log(p90) - mu) / NormInv(FitQuantile)
	return model.LogNormal{Mu: mu, Sigma: sigma}, nil
}

func FitSource(source model.LogNormalSource) (model.LogNormal, error) {
	return LogNormalFit(source.MedianUSD, source.P90USD)
}

func LogNormalQuantile(p, mu, sigma float64) float64 {
	return math.Exp(mu + sigma*NormInv(p))
}

// LogNormalDensity is 0 for x <= 0 and for a non-positive sigma.
func LogNormalDensity(x, mu, sigma float64) float64 {
	if x <= 0 || !(sigma > 0) {
		return 0
	}
	logNormal := distuv.LogNormal{
		Mu:    mu,
		Sigma: sigma,
	}
	return logNormal.Prob(x)
}

// LogNormalCdf is the inverse of LogNormalQuantile, 0 for x <= 0.
func LogNormalCdf(x, mu, sigma float64) float64 {
	if x <= 0 || !(sigma > 0) {
		return 0
	}
	return NormalCdf((math.Log(x) - mu) / sigma)
}
