package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Density is the Gaussian probability density at x, 0 when stddev is not strictly positive.
func Density(x, mean, stddev float64) float64 {
	if !(stddev > 0) {
		return 0
	}
	normal := distuv.Normal{
		Mu:    mean,
		Sigma: stddev,
	}
	return normal.Prob(x)
}

// NormalCdf is the standard normal CDF, evaluated through the complementary error function.
func NormalCdf(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// NormInv approximates the standard normal quantile with Acklam's rational approximation.
// p is clamped into [ProbEpsilon, 1-ProbEpsilon] so the tails stay finite.
func NormInv(p float64) float64 {
	if math.IsNaN(p) {
		return math.NaN()
	}
	p = math.Min(1-ProbEpsilon, math.Max(ProbEpsilon, p))

	a, b, c, d := acklamA, acklamB, acklamC, acklamD

	switch {
	case p < acklamLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > acklamHigh:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}
