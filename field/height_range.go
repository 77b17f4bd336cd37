package field

import (
	"context"

	"github.com/uyouii/rangefield/chart"
	"github.com/uyouii/rangefield/constraint"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/units"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/zap"
)

type HeightRangeView struct {
	Pair     model.EndpointPair `json:"pair"`
	Anchor   *float64           `json:"anchor"`
	MinCap   float64            `json:"min_cap"`
	MaxFloor float64            `json:"max_floor"`
	Hint     string             `json:"hint,omitempty"`
	Compact  string             `json:"imperial_compact"`
	Spoken   string             `json:"imperial_spoken"`
	MinDraft string             `json:"min_draft"`
	MaxDraft string             `json:"max_draft"`
	Chart    model.Chart        `json:"chart"`
	RangeCm  string             `json:"range_cm"`
	Legend   []string           `json:"legend"`
}

// HeightRangeField is a partner height range whose endpoints are bounded relative
// to the anchor value read from AnchorPath.
type HeightRangeField struct {
	Base          string
	AnchorPath    string
	Bounds        constraint.Bounds
	Distributions []model.NamedGaussian

	form      Form
	minDraft  *Draft
	maxDraft  *Draft
	projector *chart.Projector
}

func NewHeightRangeField(form Form, base string, bounds constraint.Bounds,
	dists []model.NamedGaussian) *HeightRangeField {
	return &HeightRangeField{
		Base:          base,
		AnchorPath:    DefaultAnchorPath,
		Bounds:        bounds,
		Distributions: dists,
		form:          form,
		minDraft:      NewDraft(form.Value(MinPath(base))),
		maxDraft:      NewDraft(form.Value(MaxPath(base))),
		projector:     chart.NewGaussianProjector(bounds.Min, bounds.Max),
	}
}

func (f *HeightRangeField) Anchor() *float64 {
	return f.form.Value(f.AnchorPath)
}

// Current runs the stored endpoints, or the domain edges when absent, through the constraints.
func (f *HeightRangeField) Current() model.EndpointPair {
	rawLo, rawHi := f.Bounds.Min, f.Bounds.Max
	if v := f.form.Value(MinPath(f.Base)); v != nil {
		rawLo = *v
	}
	if v := f.form.Value(MaxPath(f.Base)); v != nil {
		rawHi = *v
	}
	return f.Bounds.Apply(rawLo, rawHi, f.Anchor())
}

// Slide applies a drag of either thumb; both endpoints are recomputed before anything is written.
func (f *HeightRangeField) Slide(ctx context.Context, a, b float64) model.EndpointPair {
	pair := f.Bounds.Apply(a, b, f.Anchor())
	f.writeMin(ctx, utils.Float(pair.Low))
	f.writeMax(ctx, utils.Float(pair.High))
	utils.GetLogger(ctx).Debug("height range slide", zap.String("base", f.Base),
		zap.Float64("a", a), zap.Float64("b", b), zap.String("pair", pair.DebugString()))
	return pair
}

func (f *HeightRangeField) EditMin(text string) {
	f.minDraft.Edit(text)
}

func (f *HeightRangeField) EditMax(text string) {
	f.maxDraft.Edit(text)
}

func (f *HeightRangeField) MinDraft() *Draft {
	return f.minDraft
}

func (f *HeightRangeField) MaxDraft() *Draft {
	return f.maxDraft
}

// CommitMin commits the low endpoint draft against the current high endpoint.
// The high endpoint is written too when the constraints moved it.
func (f *HeightRangeField) CommitMin(ctx context.Context) bool {
	v, ok := f.minDraft.Commit()
	if !ok {
		utils.GetLogger(ctx).Info("height range min draft rejected, reverted",
			zap.String("base", f.Base), zap.String("draft", f.minDraft.Text()))
		return false
	}
	if v == nil {
		f.writeMin(ctx, nil)
		return true
	}

	current := f.Current()
	pair := f.Bounds.Apply(*v, current.High, f.Anchor())
	f.writeMin(ctx, utils.Float(pair.Low))
	if pair.High != current.High {
		f.writeMax(ctx, utils.Float(pair.High))
	}
	return true
}

// CommitMax commits the high endpoint draft against the current low endpoint.
func (f *HeightRangeField) CommitMax(ctx context.Context) bool {
	v, ok := f.maxDraft.Commit()
	if !ok {
		utils.GetLogger(ctx).Info("height range max draft rejected, reverted",
			zap.String("base", f.Base), zap.String("draft", f.maxDraft.Text()))
		return false
	}
	if v == nil {
		f.writeMax(ctx, nil)
		return true
	}

	current := f.Current()
	pair := f.Bounds.Apply(current.Low, *v, f.Anchor())
	f.writeMax(ctx, utils.Float(pair.High))
	if pair.Low != current.Low {
		f.writeMin(ctx, utils.Float(pair.Low))
	}
	return true
}

func (f *HeightRangeField) writeMin(ctx context.Context, v *float64) {
	f.write(ctx, MinPath(f.Base), v, f.minDraft)
}

func (f *HeightRangeField) writeMax(ctx context.Context, v *float64) {
	f.write(ctx, MaxPath(f.Base), v, f.maxDraft)
}

func (f *HeightRangeField) write(ctx context.Context, path string, v *float64, draft *Draft) {
	f.form.SetValue(path, v, commitOptions)
	draft.Sync(v)
	utils.GetLogger(ctx).Debug("height range committed", zap.String("path", path), zap.Any("value", v))
}

func (f *HeightRangeField) View() HeightRangeView {
	pair := f.Current()
	anchor := f.Anchor()
	minCap, maxFloor := f.Bounds.Caps(anchor)
	return HeightRangeView{
		Pair:     pair,
		Anchor:   anchor,
		MinCap:   minCap,
		MaxFloor: maxFloor,
		Hint:     f.Bounds.Hint(anchor),
		Compact:  units.RangeCompact(&pair.Low, &pair.High),
		Spoken:   units.RangeSpoken(&pair.Low, &pair.High),
		MinDraft: f.minDraft.Text(),
		MaxDraft: f.maxDraft.Text(),
		Chart:    f.projector.Gaussians(f.Distributions, []float64{pair.Low, pair.High}, &pair),
		RangeCm:  rangeCm(f.Bounds),
		Legend:   legend(f.Distributions),
	}
}
