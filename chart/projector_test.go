package chart

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/model"
)

var heights = []model.NamedGaussian{
	{Name: "men", Gaussian: model.Gaussian{Mean: 175.3, StdDev: 7.1}},
	{Name: "women", Gaussian: model.Gaussian{Mean: 161.5, StdDev: 6.5}},
}

func minY(path model.Path) float64 {
	res := math.Inf(1)
	for _, pt := range path.Points {
		res = math.Min(res, pt.Y)
	}
	return res
}

func TestProjectJointNormalization(t *testing.T) {
	p := NewGaussianProjector(120, 220)
	chart := p.Gaussians(heights, nil, nil)

	require.Equal(t, model.ChartReady, chart.State)
	require.Len(t, chart.Paths, 2)

	men, ok := chart.PathFor("men")
	require.True(t, ok)
	women, ok := chart.PathFor("women")
	require.True(t, ok)

	top := p.Layout.Margin.Top
	// the narrower women's curve owns the joint maximum, the men's curve stays below it
	assert.InDelta(t, top, minY(women), 1e-9)
	assert.Greater(t, minY(men), top+1)

	tallest := math.Min(minY(men), minY(women))
	assert.InDelta(t, p.Layout.PlotHeight(), chart.Baseline-tallest, 1e-9)
}

func TestProjectGeometry(t *testing.T) {
	p := NewGaussianProjector(120, 220)
	chart := p.Gaussians(heights, []float64{170}, &model.EndpointPair{Low: 150, High: 190})

	assert.Equal(t, 720.0, chart.Width)
	assert.Equal(t, 180.0, chart.Height)
	assert.Equal(t, 168.0, chart.Baseline)

	path := chart.Paths[0]
	require.Len(t, path.Points, GaussianSamples)
	assert.InDelta(t, 16, path.Points[0].X, 1e-9)
	assert.InDelta(t, 708, path.Points[len(path.Points)-1].X, 1e-9)
	assert.True(t, strings.HasPrefix(path.D, "M16.00,"), path.D[:20])
	assert.Equal(t, GaussianSamples-1, strings.Count(path.D, " L "))

	require.Len(t, chart.Markers, 1)
	assert.InDelta(t, 362, chart.Markers[0].X, 1e-9)
	assert.Equal(t, 8.0, chart.Markers[0].Y1)
	assert.Equal(t, 168.0, chart.Markers[0].Y2)

	require.NotNil(t, chart.Band)
	assert.InDelta(t, 16+30*6.92, chart.Band.X, 1e-9)
	assert.InDelta(t, 40*6.92, chart.Band.Width, 1e-9)
	assert.Equal(t, 160.0, chart.Band.Height)

	collapsed := p.Gaussians(heights, nil, &model.EndpointPair{Low: 170, High: 170})
	assert.Equal(t, float64(MinBandWidth), collapsed.Band.Width)
}

func TestProjectStates(t *testing.T) {
	p := NewGaussianProjector(120, 220)

	empty := p.Gaussians(nil, []float64{170}, nil)
	assert.Equal(t, model.ChartEmpty, empty.State)
	assert.Empty(t, empty.Paths)
	assert.Len(t, empty.Markers, 1)

	bad := p.Gaussians([]model.NamedGaussian{
		{Name: "men", Gaussian: model.Gaussian{Mean: 175, StdDev: 0}},
		{Name: "women", Gaussian: model.Gaussian{Mean: 300, StdDev: 6}},
	}, nil, nil)
	assert.Equal(t, model.ChartError, bad.State)
	assert.Equal(t, []string{"men: stddev must be > 0", "women: mean 300 outside [120, 220]"}, bad.Reasons)
	// an out of domain mean is reported but still drawn
	require.Len(t, bad.Paths, 1)
	assert.Equal(t, "women", bad.Paths[0].Name)

	broken := NewGaussianProjector(220, 120).Gaussians(heights, nil, nil)
	assert.Equal(t, model.ChartError, broken.State)
	assert.Empty(t, broken.Paths)
}

func TestIncomeProjector(t *testing.T) {
	p := NewIncomeProjector(14_000, 500_000)

	xs := p.SamplePoints()
	require.Len(t, xs, IncomeSamples)
	assert.InDelta(t, 14_000, xs[0], 1e-6)
	assert.InDelta(t, 500_000, xs[len(xs)-1], 1e-6)
	ratio := xs[1] / xs[0]
	for i := 2; i < len(xs); i++ {
		assert.InDelta(t, ratio, xs[i]/xs[i-1], 1e-9)
	}

	assert.InDelta(t, 16, p.XToSvg(14_000), 1e-9)
	assert.InDelta(t, 708, p.XToSvg(500_000), 1e-9)
	assert.InDelta(t, 16, p.XToSvg(1), 1e-9)
	assert.InDelta(t, 708, p.XToSvg(9e9), 1e-9)

	fit := model.LogNormal{Mu: math.Log(70_000), Sigma: 0.737}
	chart := p.LogNormal("income", fit, []float64{27_000, 180_000}, nil)
	assert.Equal(t, model.ChartReady, chart.State)
	require.Len(t, chart.Paths, 1)
	assert.InDelta(t, p.Layout.Margin.Top, minY(chart.Paths[0]), 1e-9)
	require.Len(t, chart.Markers, 2)
	assert.Less(t, chart.Markers[0].X, chart.Markers[1].X)

	low := p.LogNormal("income", model.LogNormal{Mu: math.Log(5_000), Sigma: 0.46}, nil, nil)
	assert.Equal(t, model.ChartError, low.State)
	assert.Equal(t, []string{"income: median 5000 outside [14000, 500000]"}, low.Reasons)
	require.Len(t, low.Paths, 1)
	assert.NotEmpty(t, low.Paths[0].D)

	bad := p.LogNormal("income", model.LogNormal{Mu: 11, Sigma: 0}, nil, nil)
	assert.Equal(t, model.ChartError, bad.State)
	assert.Equal(t, []string{"income: sigma must be > 0"}, bad.Reasons)
	assert.Empty(t, bad.Paths)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, model.ChartEmpty, Status(false, nil))
	assert.Equal(t, model.ChartReady, Status(true, nil))
	assert.Equal(t, model.ChartError, Status(false, []string{"x"}))
	assert.Equal(t, model.ChartError, Status(true, []string{"x"}))
	assert.Equal(t, "error", model.ChartError.String())
}

func TestStrokePath(t *testing.T) {
	assert.Equal(t, "", StrokePath(nil))
	assert.Equal(t, "M1.00,2.00 L 3.50,4.25", StrokePath([]model.Point{{X: 1, Y: 2}, {X: 3.5, Y: 4.25}}))
}

func TestWritePlot(t *testing.T) {
	p := NewGaussianProjector(120, 220)
	series := []Series{GaussianSeries(heights[0]), GaussianSeries(heights[1])}

	var buf bytes.Buffer
	require.NoError(t, p.WritePlot(&buf, "Height", series, []float64{160, 190}, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	income := NewIncomeProjector(14_000, 500_000)
	buf.Reset()
	fit := model.LogNormal{Mu: math.Log(70_000), Sigma: 0.737}
	require.NoError(t, income.WritePlot(&buf, "Income", []Series{LogNormalSeries("income", fit)}, nil, "svg"))
	assert.NotZero(t, buf.Len())

	err := NewGaussianProjector(220, 120).WritePlot(&buf, "", series, nil, "svg")
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}
