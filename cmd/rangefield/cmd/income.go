package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/rangefield/field"
	"github.com/uyouii/rangefield/form"
)

const incomeBase = "demographics.income_bracket"

var (
	incomeScale  string
	incomeSlider []float64
	incomeLow    string
	incomeHigh   string
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Map slider positions or typed dollars onto the income range",
	Example: `  rangefield income --scale percentile --slider 20,80
  rangefield income --min 40000 --max 95000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(ctx)
		if err != nil {
			printError("load config", err)
			return err
		}
		if incomeScale != "" {
			cfg.Income.Scale = incomeScale
		}
		mapper, fit, err := cfg.IncomeMapper()
		if err != nil {
			printError("build income mapper", err)
			return err
		}

		store := form.NewStore(nil)
		f := field.NewIncomeRangeFieldWithMapper(store, incomeBase, cfg.IncomeSource(), fit, mapper)

		switch len(incomeSlider) {
		case 0:
		case 2:
			f.Slide(ctx, incomeSlider[0], incomeSlider[1])
		default:
			return fmt.Errorf("--slider takes two values, got %d", len(incomeSlider))
		}
		if cmd.Flags().Changed("min") {
			f.EditMin(incomeLow)
			f.CommitMin(ctx)
		}
		if cmd.Flags().Changed("max") {
			f.EditMax(incomeHigh)
			f.CommitMax(ctx)
		}
		return printJSON(cmd, struct {
			Field field.IncomeRangeView `json:"field"`
			Form  *form.Store           `json:"form"`
		}{f.View(), store})
	},
}

func init() {
	incomeCmd.Flags().StringVar(&incomeScale, "scale", "", "slider law: linear, log or percentile")
	incomeCmd.Flags().Float64SliceVar(&incomeSlider, "slider", nil, "slider positions 0-100, two values")
	incomeCmd.Flags().StringVar(&incomeLow, "min", "", "typed minimum in dollars")
	incomeCmd.Flags().StringVar(&incomeHigh, "max", "", "typed maximum in dollars")

	rootCmd.AddCommand(incomeCmd)
}
