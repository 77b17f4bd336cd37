package utils

import "math"

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FiniteValue reports whether v is present and finite.
func FiniteValue(v *float64) bool {
	return v != nil && IsFinite(*v)
}

func Float(v float64) *float64 {
	return &v
}

func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// RoundToStep rounds v to the nearest multiple of step, a non-positive step leaves v unchanged.
func RoundToStep(v, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return math.Round(v/step) * step
}

func FloorToStep(v, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return math.Floor(v/step) * step
}

func CeilToStep(v, step float64) float64 {
	if !(step > 0) {
		return v
	}
	return math.Ceil(v/step) * step
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func LerpInv(x, a, b float64) float64 {
	if a == b {
		return 0
	}
	return (x - a) / (b - a)
}

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow10(int(round))
	return math.Round(f*pow) / pow
}
