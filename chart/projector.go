package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/rangefield/dist"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
	"gonum.org/v1/gonum/floats"
)

type Layout struct {
	Width  float64
	Height float64
	Margin model.Margin
}

func DefaultLayout() Layout {
	return Layout{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Margin: model.Margin{Left: 16, Right: 12, Top: 8, Bottom: 12},
	}
}

func (l Layout) PlotWidth() float64 {
	return l.Width - l.Margin.Left - l.Margin.Right
}

func (l Layout) PlotHeight() float64 {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}

// Baseline is the svg y of zero density.
func (l Layout) Baseline() float64 {
	return l.Margin.Top + l.PlotHeight()
}

// Series is one named density curve.
type Series struct {
	Name    string
	Density func(x float64) float64
}

func GaussianSeries(d model.NamedGaussian) Series {
	mean, stddev := d.Mean, d.StdDev
	return Series{
		Name:    d.Name,
		Density: func(x float64) float64 { return dist.Density(x, mean, stddev) },
	}
}

func LogNormalSeries(name string, fit model.LogNormal) Series {
	return Series{
		Name:    name,
		Density: func(x float64) float64 { return dist.LogNormalDensity(x, fit.Mu, fit.Sigma) },
	}
}

// Projector samples densities over [Min, Max] and maps them into svg coordinates.
type Projector struct {
	Layout  Layout
	Axis    Axis
	Min     float64
	Max     float64
	Samples int
}

func NewGaussianProjector(min, max float64) *Projector {
	return &Projector{
		Layout:  DefaultLayout(),
		Axis:    AxisLinear,
		Min:     min,
		Max:     max,
		Samples: GaussianSamples,
	}
}

func NewIncomeProjector(min, max float64) *Projector {
	return &Projector{
		Layout:  DefaultLayout(),
		Axis:    AxisLog,
		Min:     min,
		Max:     max,
		Samples: IncomeSamples,
	}
}

func (p *Projector) validDomain() bool {
	if !utils.IsFinite(p.Min) || !utils.IsFinite(p.Max) || !(p.Min < p.Max) {
		return false
	}
	return p.Axis != AxisLog || p.Min > 0
}

func (p *Projector) sampleCount() int {
	if p.Samples < 2 {
		if p.Axis == AxisLog {
			return IncomeSamples
		}
		return GaussianSamples
	}
	return p.Samples
}

// SamplePoints is evenly spaced in value space on a linear axis and in ln(x) on a log axis.
func (p *Projector) SamplePoints() []float64 {
	xs := make([]float64, p.sampleCount())
	if p.Axis == AxisLog {
		return floats.LogSpan(xs, p.Min, p.Max)
	}
	return floats.Span(xs, p.Min, p.Max)
}

func (p *Projector) XToSvg(x float64) float64 {
	m := p.Layout.Margin
	if p.Axis == AxisLog {
		lmin, lmax := math.Log(p.Min), math.Log(p.Max)
		lx := math.Log(utils.Clamp(x, p.Min, p.Max))
		return m.Left + (lx-lmin)/(lmax-lmin)*p.Layout.PlotWidth()
	}
	return m.Left + (x-p.Min)/(p.Max-p.Min)*p.Layout.PlotWidth()
}

func (p *Projector) yFromDensity(d, dMax float64) float64 {
	return p.Layout.Margin.Top + (1-d/dMax)*p.Layout.PlotHeight()
}

// sample evaluates every series on the shared grid and returns the joint maximum density.
func (p *Projector) sample(series []Series) ([]float64, [][]float64, float64) {
	xs := p.SamplePoints()
	dens := make([][]float64, len(series))
	dMax := 0.0
	for i, s := range series {
		dens[i] = make([]float64, len(xs))
		for j, x := range xs {
			dens[i][j] = s.Density(x)
		}
		dMax = math.Max(dMax, floats.Max(dens[i]))
	}
	if !(dMax > 0) {
		dMax = MinDensity
	}
	return xs, dens, dMax
}

// Project draws every series normalized against the maximum density across all of them,
// so overlapping distributions keep their relative heights.
func (p *Projector) Project(series []Series, markers []float64, band *model.EndpointPair) model.Chart {
	chart := model.Chart{
		Width:    p.Layout.Width,
		Height:   p.Layout.Height,
		Margin:   p.Layout.Margin,
		Baseline: p.Layout.Baseline(),
		Paths:    []model.Path{},
		Markers:  []model.Marker{},
		State:    model.ChartReady,
	}
	if !p.validDomain() {
		chart.State = model.ChartError
		chart.Reasons = []string{fmt.Sprintf("invalid %v domain [%v, %v]", p.Axis, p.Min, p.Max)}
		return chart
	}

	xs, dens, dMax := p.sample(series)
	for i, s := range series {
		points := make([]model.Point, len(xs))
		for j, x := range xs {
			points[j] = model.Point{X: p.XToSvg(x), Y: p.yFromDensity(dens[i][j], dMax)}
		}
		chart.Paths = append(chart.Paths, model.Path{
			Name:   s.Name,
			Points: points,
			D:      StrokePath(points),
		})
	}

	for _, v := range markers {
		chart.Markers = append(chart.Markers, model.Marker{
			Value: v,
			X:     p.XToSvg(v),
			Y1:    p.Layout.Margin.Top,
			Y2:    chart.Baseline,
		})
	}

	if band != nil {
		xLo, xHi := p.XToSvg(band.Low), p.XToSvg(band.High)
		chart.Band = &model.Band{
			X:      math.Min(xLo, xHi),
			Y:      p.Layout.Margin.Top,
			Width:  math.Max(MinBandWidth, math.Abs(xHi-xLo)),
			Height: chart.Baseline - p.Layout.Margin.Top,
		}
	}
	return chart
}

// Gaussians validates the distributions, plots the usable ones and sets the display state.
func (p *Projector) Gaussians(dists []model.NamedGaussian, markers []float64, band *model.EndpointPair) model.Chart {
	usable, reasons := dist.ValidateGaussians(dists, p.Min, p.Max)
	series := make([]Series, 0, len(usable))
	for _, d := range usable {
		series = append(series, GaussianSeries(d))
	}
	return withStatus(p.Project(series, markers, band), len(dists) > 0, reasons)
}

func (p *Projector) LogNormal(name string, fit model.LogNormal, markers []float64, band *model.EndpointPair) model.Chart {
	var reasons []string
	series := []Series{}
	switch {
	case !utils.IsFinite(fit.Mu) || !utils.IsFinite(fit.Sigma):
		reasons = append(reasons, fmt.Sprintf("%s: non-numeric mu/sigma", name))
	case fit.Sigma <= 0:
		reasons = append(reasons, fmt.Sprintf("%s: sigma must be > 0", name))
	default:
		// an out of domain median is reported, the curve is still drawn
		if median := math.Exp(fit.Mu); median < p.Min || median > p.Max {
			reasons = append(reasons, fmt.Sprintf("%s: median %v outside [%v, %v]",
				name, utils.FormatFloat(median, 2), p.Min, p.Max))
		}
		series = append(series, LogNormalSeries(name, fit))
	}
	return withStatus(p.Project(series, markers, band), true, reasons)
}

// Status picks the display state, error wins over empty.
func Status(hasAny bool, reasons []string) model.ChartState {
	if len(reasons) > 0 {
		return model.ChartError
	}
	if !hasAny {
		return model.ChartEmpty
	}
	return model.ChartReady
}

func withStatus(chart model.Chart, hasAny bool, reasons []string) model.Chart {
	if chart.State == model.ChartError {
		return chart
	}
	chart.State = Status(hasAny, reasons)
	chart.Reasons = reasons
	return chart
}

// StrokePath renders "Mx,y L x,y ..." with two decimals, empty for no points.
func StrokePath(points []model.Point) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M")
	for i, pt := range points {
		if i > 0 {
			sb.WriteString(" L ")
		}
		sb.WriteString(strconv.FormatFloat(pt.X, 'f', 2, 64))
		sb.WriteString(",")
		sb.WriteString(strconv.FormatFloat(pt.Y, 'f', 2, 64))
	}
	return sb.String()
}
