package scale

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/dist"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
)

// Mapper converts between slider positions in [SliderMin, SliderMax] and dollars in [Min, Max].
type Mapper struct {
	Min  float64
	Max  float64
	Step float64
	Law  Law
}

func NewMapper(lawName string, min, max, step float64, fit model.LogNormal) (*Mapper, error) {
	if !(min < max) {
		return nil, fmt.Errorf("%w: min %v must be below max %v", common.ErrorInvalidValue, min, max)
	}
	law, err := ParseLaw(lawName, min, max, fit)
	if err != nil {
		return nil, err
	}
	return &Mapper{
		Min:  min,
		Max:  max,
		Step: step,
		Law:  law,
	}, nil
}

// NewIncomeMapper builds a mapper over [MinIncome, MaxIncome] from a median / p90 pair.
func NewIncomeMapper(lawName string, source model.LogNormalSource, step float64) (*Mapper, model.LogNormal, error) {
	fit, err := dist.FitSource(source)
	if err != nil {
		return nil, model.LogNormal{}, err
	}
	mapper, err := NewMapper(lawName, MinIncome, MaxIncome, step, fit)
	if err != nil {
		return nil, model.LogNormal{}, err
	}
	return mapper, fit, nil
}

func (m *Mapper) ClampDollars(x float64) float64 {
	return utils.Clamp(x, m.Min, m.Max)
}

// RoundDollars clamps x and snaps it to the step grid.
func (m *Mapper) RoundDollars(x float64) float64 {
	return m.ClampDollars(utils.RoundToStep(m.ClampDollars(x), m.Step))
}

func (m *Mapper) SliderToDollars(s float64) float64 {
	if math.IsNaN(s) {
		s = SliderMin
	}
	t := utils.Clamp(s/SliderMax, 0, 1)
	return m.RoundDollars(m.Law.ToValue(t))
}

func (m *Mapper) DollarsToSlider(x float64) float64 {
	if math.IsNaN(x) {
		x = m.Min
	}
	t := m.Law.ToPosition(m.ClampDollars(x))
	return utils.Clamp(t*SliderMax, SliderMin, SliderMax)
}

// Pair maps two slider positions, in either order, to an ordered dollar pair.
func (m *Mapper) Pair(a, b float64) model.EndpointPair {
	return model.EndpointPair{
		Low:  m.SliderToDollars(math.Min(a, b)),
		High: m.SliderToDollars(math.Max(a, b)),
	}
}

// Defaults is the P10-P90 range of the fitted model, clamped to the domain and snapped to the step.
func (m *Mapper) Defaults(fit model.LogNormal) model.EndpointPair {
	return model.EndpointPair{
		Low:  m.RoundDollars(dist.LogNormalQuantile(DefaultLowQuantile, fit.Mu, fit.Sigma)),
		High: m.RoundDollars(dist.LogNormalQuantile(DefaultHighQuantile, fit.Mu, fit.Sigma)),
	}
}

func FormatUSD(x float64) string {
	v := int64(math.Round(x))
	if v < 0 {
		return "-$" + humanize.Comma(-v)
	}
	return "$" + humanize.Comma(v)
}

// RangeLabel renders x as dollars, collapsing the domain edges to "<$14,000" and "$500,000+".
func (m *Mapper) RangeLabel(x *float64) string {
	if !utils.FiniteValue(x) {
		return ""
	}
	switch {
	case *x <= m.Min+LabelEpsilon:
		return "<" + FormatUSD(m.Min)
	case *x >= m.Max-LabelEpsilon:
		return FormatUSD(m.Max) + "+"
	default:
		return FormatUSD(*x)
	}
}

func (m *Mapper) SliderLabel(s *float64) string {
	if s == nil {
		return ""
	}
	return m.RangeLabel(utils.Float(m.SliderToDollars(*s)))
}
