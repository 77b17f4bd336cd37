package field

import (
	"context"
	"math"

	"github.com/uyouii/rangefield/chart"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/scale"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/zap"
)

const incomeSeriesName = "income"

type IncomeRangeView struct {
	Pair     model.EndpointPair `json:"pair"`
	Slider   [2]float64         `json:"slider"`
	Scale    string             `json:"scale"`
	MinLabel string             `json:"min_label"`
	MaxLabel string             `json:"max_label"`
	MinDraft string             `json:"min_draft"`
	MaxDraft string             `json:"max_draft"`
	Chart    model.Chart        `json:"chart"`
}

// IncomeRangeField is an income range in dollars driven by a 0-100 slider under a scale law,
// with a log-normal fit of the population drawn on a log axis.
type IncomeRangeField struct {
	Base   string
	Source model.LogNormalSource
	Fit    model.LogNormal
	Mapper *scale.Mapper

	form      Form
	minDraft  *Draft
	maxDraft  *Draft
	projector *chart.Projector
}

func NewIncomeRangeField(form Form, base string, source model.LogNormalSource,
	lawName string, step float64) (*IncomeRangeField, error) {
	mapper, fit, err := scale.NewIncomeMapper(lawName, source, step)
	if err != nil {
		return nil, err
	}
	return NewIncomeRangeFieldWithMapper(form, base, source, fit, mapper), nil
}

func NewIncomeRangeFieldWithMapper(form Form, base string, source model.LogNormalSource,
	fit model.LogNormal, mapper *scale.Mapper) *IncomeRangeField {
	return &IncomeRangeField{
		Base:      base,
		Source:    source,
		Fit:       fit,
		Mapper:    mapper,
		form:      form,
		minDraft:  NewDraft(form.Value(MinPath(base))),
		maxDraft:  NewDraft(form.Value(MaxPath(base))),
		projector: chart.NewIncomeProjector(mapper.Min, mapper.Max),
	}
}

func (f *IncomeRangeField) Defaults() model.EndpointPair {
	return f.Mapper.Defaults(f.Fit)
}

// Current is the stored endpoints clamped into the domain, the model's P10 / P90 where absent.
// A crossed pair meets at the low endpoint.
func (f *IncomeRangeField) Current() model.EndpointPair {
	pair := f.Defaults()
	if v := f.form.Value(MinPath(f.Base)); utils.FiniteValue(v) {
		pair.Low = f.Mapper.ClampDollars(*v)
	}
	if v := f.form.Value(MaxPath(f.Base)); utils.FiniteValue(v) {
		pair.High = f.Mapper.ClampDollars(*v)
	}
	if pair.Crossed() {
		pair.High = pair.Low
	}
	return pair
}

func (f *IncomeRangeField) SliderValues() [2]float64 {
	pair := f.Current()
	return [2]float64{f.Mapper.DollarsToSlider(pair.Low), f.Mapper.DollarsToSlider(pair.High)}
}

// Slide maps both thumb positions, in either order, and writes the pair together.
func (f *IncomeRangeField) Slide(ctx context.Context, a, b float64) model.EndpointPair {
	pair := f.Mapper.Pair(a, b)
	f.writeMin(ctx, utils.Float(pair.Low))
	f.writeMax(ctx, utils.Float(pair.High))
	utils.GetLogger(ctx).Debug("income range slide", zap.String("base", f.Base),
		zap.String("scale", f.Mapper.Law.Name()), zap.Float64("a", a), zap.Float64("b", b),
		zap.String("pair", pair.DebugString()))
	return pair
}

func (f *IncomeRangeField) EditMin(text string) {
	f.minDraft.Edit(text)
}

func (f *IncomeRangeField) EditMax(text string) {
	f.maxDraft.Edit(text)
}

func (f *IncomeRangeField) MinDraft() *Draft {
	return f.minDraft
}

func (f *IncomeRangeField) MaxDraft() *Draft {
	return f.maxDraft
}

// CommitMin clamps and rounds the low endpoint draft, never above the current high endpoint.
func (f *IncomeRangeField) CommitMin(ctx context.Context) bool {
	v, ok := f.minDraft.Commit()
	if !ok {
		utils.GetLogger(ctx).Info("income min draft rejected, reverted",
			zap.String("base", f.Base), zap.String("draft", f.minDraft.Text()))
		return false
	}
	if v == nil {
		f.writeMin(ctx, nil)
		return true
	}

	high := f.Current().High
	lo := f.Mapper.RoundDollars(math.Min(high, f.Mapper.ClampDollars(*v)))
	if lo > high {
		lo = f.Mapper.ClampDollars(utils.FloorToStep(high, f.Mapper.Step))
	}
	f.writeMin(ctx, utils.Float(lo))
	return true
}

// CommitMax clamps and rounds the high endpoint draft, never below the current low endpoint.
func (f *IncomeRangeField) CommitMax(ctx context.Context) bool {
	v, ok := f.maxDraft.Commit()
	if !ok {
		utils.GetLogger(ctx).Info("income max draft rejected, reverted",
			zap.String("base", f.Base), zap.String("draft", f.maxDraft.Text()))
		return false
	}
	if v == nil {
		f.writeMax(ctx, nil)
		return true
	}

	low := f.Current().Low
	hi := f.Mapper.RoundDollars(math.Max(low, f.Mapper.ClampDollars(*v)))
	if hi < low {
		hi = f.Mapper.ClampDollars(utils.CeilToStep(low, f.Mapper.Step))
	}
	f.writeMax(ctx, utils.Float(hi))
	return true
}

func (f *IncomeRangeField) writeMin(ctx context.Context, v *float64) {
	f.write(ctx, MinPath(f.Base), v, f.minDraft)
}

func (f *IncomeRangeField) writeMax(ctx context.Context, v *float64) {
	f.write(ctx, MaxPath(f.Base), v, f.maxDraft)
}

func (f *IncomeRangeField) write(ctx context.Context, path string, v *float64, draft *Draft) {
	f.form.SetValue(path, v, commitOptions)
	draft.Sync(v)
	utils.GetLogger(ctx).Debug("income range committed", zap.String("path", path), zap.Any("value", v))
}

func (f *IncomeRangeField) View() IncomeRangeView {
	pair := f.Current()
	return IncomeRangeView{
		Pair:     pair,
		Slider:   f.SliderValues(),
		Scale:    f.Mapper.Law.Name(),
		MinLabel: f.Mapper.RangeLabel(&pair.Low),
		MaxLabel: f.Mapper.RangeLabel(&pair.High),
		MinDraft: f.minDraft.Text(),
		MaxDraft: f.maxDraft.Text(),
		Chart:    f.projector.LogNormal(incomeSeriesName, f.Fit, []float64{pair.Low, pair.High}, nil),
	}
}
