package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uyouii/rangefield/chart"
	"github.com/uyouii/rangefield/dist"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/zap"
)

var (
	plotOut     string
	plotFormat  string
	plotMarkers []float64
)

var plotCmd = &cobra.Command{
	Use:       "plot height|income",
	Short:     "Export the distribution chart as png, svg or pdf",
	Example:   `  rangefield plot height --out height.svg --marker 165,190`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"height", "income"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(ctx)
		if err != nil {
			printError("load config", err)
			return err
		}

		var (
			projector *chart.Projector
			series    []chart.Series
			title     string
		)
		switch args[0] {
		case "height":
			usable, reasons := dist.ValidateGaussians(cfg.Height.Distributions, cfg.Height.Min, cfg.Height.Max)
			if len(reasons) > 0 {
				utils.GetLogger(ctx).Warn("height distributions", zap.Strings("reasons", reasons))
			}
			projector = chart.NewGaussianProjector(cfg.Height.Min, cfg.Height.Max)
			for _, d := range usable {
				series = append(series, chart.GaussianSeries(d))
			}
			title = "Height (cm)"
		case "income":
			_, fit, err := cfg.IncomeMapper()
			if err != nil {
				printError("fit income", err)
				return err
			}
			utils.GetLogger(ctx).Debug("income fit", zap.Float64("mu", utils.FormatFloat(fit.Mu, 4)),
				zap.Float64("sigma", utils.FormatFloat(fit.Sigma, 4)))
			projector = chart.NewIncomeProjector(cfg.Income.Min, cfg.Income.Max)
			series = []chart.Series{chart.LogNormalSeries("income", fit)}
			title = "Income (USD)"
		}
		if len(series) == 0 {
			return fmt.Errorf("no usable %s distribution to plot", args[0])
		}

		format := plotFormat
		if format == "" {
			format = strings.TrimPrefix(filepath.Ext(plotOut), ".")
		}
		f, err := os.Create(plotOut)
		if err != nil {
			printError("create output", err)
			return err
		}
		defer f.Close()
		if err := projector.WritePlot(f, title, series, plotMarkers, format); err != nil {
			printError("write plot", err)
			return err
		}
		utils.GetLogger(ctx).Info("plot written", zap.String("path", plotOut), zap.String("format", format))
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "chart.svg", "output file")
	plotCmd.Flags().StringVar(&plotFormat, "format", "", "image format, taken from the output extension when empty")
	plotCmd.Flags().Float64SliceVar(&plotMarkers, "marker", nil, "values to mark on the chart")

	rootCmd.AddCommand(plotCmd)
}
