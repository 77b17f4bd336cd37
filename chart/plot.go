package chart

import (
	"fmt"
	"io"

	"github.com/uyouii/rangefield/common"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders the same normalized series and markers Project computes as an image,
// format is one of the gonum/plot formats ("png", "svg", "pdf", ...).
func (p *Projector) WritePlot(w io.Writer, title string, series []Series, markers []float64, format string) error {
	if !p.validDomain() {
		return fmt.Errorf("%w: invalid %v domain [%v, %v]", common.ErrorInvalidValue, p.Axis, p.Min, p.Max)
	}

	plt := plot.New()
	plt.Title.Text = title
	plt.Y.Label.Text = "relative density"
	plt.X.Min, plt.X.Max = p.Min, p.Max
	plt.Y.Min, plt.Y.Max = 0, 1
	if p.Axis == AxisLog {
		plt.X.Scale = plot.LogScale{}
		plt.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	xs, dens, dMax := p.sample(series)
	for i, s := range series {
		pts := make(plotter.XYs, len(xs))
		for j, x := range xs {
			pts[j].X = x
			pts[j].Y = dens[i][j] / dMax
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		plt.Add(line)
		plt.Legend.Add(s.Name, line)
	}

	for _, m := range markers {
		line, err := plotter.NewLine(plotter.XYs{{X: m, Y: 0}, {X: m, Y: 1}})
		if err != nil {
			return fmt.Errorf("marker %v: %w", m, err)
		}
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		plt.Add(line)
	}

	writer, err := plt.WriterTo(vg.Points(p.Layout.Width), vg.Points(p.Layout.Height), format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}
