package constraint

import (
	"fmt"
	"math"

	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
)

// Bounds is the closed slider domain [Min, Max] and the grid step values snap to.
type Bounds struct {
	Min  float64 `json:"min" toml:"min" yaml:"min"`
	Max  float64 `json:"max" toml:"max" yaml:"max"`
	Step float64 `json:"step" toml:"step" yaml:"step"`
}

func DefaultBounds() Bounds {
	return Bounds{
		Min:  DefaultMinCm,
		Max:  DefaultMaxCm,
		Step: DefaultStepCm,
	}
}

func (b Bounds) Validate() error {
	if !utils.IsFinite(b.Min) || !utils.IsFinite(b.Max) || !utils.IsFinite(b.Step) {
		return fmt.Errorf("%w: non-numeric bounds %+v", common.ErrorInvalidValue, b)
	}
	if b.Min >= b.Max {
		return fmt.Errorf("%w: min %v must be below max %v", common.ErrorInvalidValue, b.Min, b.Max)
	}
	if b.Step < 0 {
		return fmt.Errorf("%w: step %v must not be negative", common.ErrorInvalidValue, b.Step)
	}
	return nil
}

func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Clamp snaps v to the step grid and clamps it into the domain.
func (b Bounds) Clamp(v float64) float64 {
	return utils.Clamp(utils.RoundToStep(v, b.Step), b.Min, b.Max)
}

// Caps returns the highest allowed low endpoint and the lowest allowed high endpoint
// for the given anchor. An absent or non-finite anchor relaxes both to the domain edges.
func (b Bounds) Caps(anchor *float64) (minCap, maxFloor float64) {
	if !utils.FiniteValue(anchor) {
		return b.Max, b.Min
	}
	a := *anchor
	// the cap is floored and the floor ceiled onto the grid so they never loosen the ratio
	minCap = utils.Clamp(utils.FloorToStep(math.Round(a*MinCapRatio), b.Step), b.Min, b.Max)
	maxFloor = utils.Clamp(utils.CeilToStep(math.Round(a*MaxFloorRatio), b.Step), b.Min, b.Max)
	return minCap, maxFloor
}

// Apply turns raw candidate endpoints into a valid pair: snapped and clamped,
// low capped and high floored relative to the anchor, and a crossed pair
// collapsed onto the low endpoint. Apply(Apply(x)) == Apply(x).
func (b Bounds) Apply(lo, hi float64, anchor *float64) model.EndpointPair {
	if math.IsNaN(lo) {
		lo = b.Min
	}
	if math.IsNaN(hi) {
		hi = b.Max
	}

	nextLo, nextHi := b.Clamp(lo), b.Clamp(hi)

	minCap, maxFloor := b.Caps(anchor)
	nextLo = math.Min(nextLo, minCap)
	nextHi = math.Max(nextHi, maxFloor)

	// the caps only push one direction each, so a crossed pair meets at the low endpoint
	if nextLo > nextHi {
		meet := utils.Clamp(nextLo, b.Min, b.Max)
		nextLo, nextHi = meet, meet
	}

	return model.EndpointPair{
		Low:  utils.Clamp(nextLo, b.Min, b.Max),
		High: utils.Clamp(nextHi, b.Min, b.Max),
	}
}

// Active reports whether the anchor narrows the range at all.
func (b Bounds) Active(anchor *float64) bool {
	if !utils.FiniteValue(anchor) {
		return false
	}
	minCap, maxFloor := b.Caps(anchor)
	return minCap < b.Max || maxFloor > b.Min
}

func (b Bounds) Hint(anchor *float64) string {
	if !b.Active(anchor) {
		return ""
	}
	minCap, maxFloor := b.Caps(anchor)
	return fmt.Sprintf("Range limited relative to your height: min ≤ %v cm (≈ +9%%), max ≥ %v cm (≈ −9%%).",
		math.Round(minCap), math.Round(maxFloor))
}
