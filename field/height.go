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

type HeightView struct {
	Value   *float64    `json:"value"`
	Current float64     `json:"current"`
	Compact string      `json:"imperial_compact"`
	Spoken  string      `json:"imperial_spoken"`
	Draft   string      `json:"draft"`
	Chart   model.Chart `json:"chart"`
	RangeCm string      `json:"range_cm"`
	Legend  []string    `json:"legend"`
}

// HeightField is a single height value in cm with the group distributions drawn behind it.
type HeightField struct {
	Path          string
	Bounds        constraint.Bounds
	Distributions []model.NamedGaussian

	form      Form
	draft     *Draft
	projector *chart.Projector
}

func NewHeightField(form Form, path string, bounds constraint.Bounds, dists []model.NamedGaussian) *HeightField {
	return &HeightField{
		Path:          path,
		Bounds:        bounds,
		Distributions: dists,
		form:          form,
		draft:         NewDraft(form.Value(path)),
		projector:     chart.NewGaussianProjector(bounds.Min, bounds.Max),
	}
}

func (f *HeightField) Value() *float64 {
	return f.form.Value(f.Path)
}

// Current is the stored value clamped into the domain, Min when absent.
func (f *HeightField) Current() float64 {
	v := f.Value()
	if !utils.FiniteValue(v) {
		return f.Bounds.Min
	}
	return utils.Clamp(*v, f.Bounds.Min, f.Bounds.Max)
}

func (f *HeightField) Slide(ctx context.Context, v float64) float64 {
	next := f.Bounds.Clamp(v)
	f.write(ctx, utils.Float(next))
	return next
}

func (f *HeightField) EditDraft(text string) {
	f.draft.Edit(text)
}

func (f *HeightField) Draft() *Draft {
	return f.draft
}

// CommitDraft writes the draft back, snapped and clamped. It returns false when the
// draft was not a number and has been reverted.
func (f *HeightField) CommitDraft(ctx context.Context) bool {
	logger := utils.GetLogger(ctx)

	v, ok := f.draft.Commit()
	if !ok {
		logger.Info("height draft rejected, reverted", zap.String("path", f.Path),
			zap.String("draft", f.draft.Text()))
		return false
	}
	if v == nil {
		f.write(ctx, nil)
		return true
	}
	f.write(ctx, utils.Float(f.Bounds.Clamp(*v)))
	return true
}

func (f *HeightField) write(ctx context.Context, v *float64) {
	logger := utils.GetLogger(ctx)
	f.form.SetValue(f.Path, v, commitOptions)
	f.draft.Sync(v)
	logger.Debug("height committed", zap.String("path", f.Path), zap.Any("value", v))
}

func (f *HeightField) View() HeightView {
	current := f.Current()
	return HeightView{
		Value:   f.Value(),
		Current: current,
		Compact: units.Compact(&current),
		Spoken:  units.Spoken(&current),
		Draft:   f.draft.Text(),
		Chart:   f.projector.Gaussians(f.Distributions, []float64{current}, nil),
		RangeCm: rangeCm(f.Bounds),
		Legend:  legend(f.Distributions),
	}
}
