package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/rangefield/field"
	"github.com/uyouii/rangefield/form"
)

var (
	heightValue string
	heightSelf  float64
	rangeLow    string
	rangeHigh   string
	rangeSlide  []float64
)

const (
	heightPath      = "physical_info.self.height_cm"
	heightRangeBase = "preferences.partner.height_cm"
)

var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Commit a single height value and show the field",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(ctx)
		if err != nil {
			printError("load config", err)
			return err
		}

		store := form.NewStore(nil)
		f := field.NewHeightField(store, heightPath, cfg.HeightBounds(), cfg.Height.Distributions)
		if cmd.Flags().Changed("value") {
			f.EditDraft(heightValue)
			f.CommitDraft(ctx)
		}
		return printJSON(cmd, f.View())
	},
}

var heightRangeCmd = &cobra.Command{
	Use:   "height-range",
	Short: "Apply the height constraints to a partner range and show the field",
	Example: `  rangefield height-range --self 180 --slide 150,205
  rangefield height-range --self 180 --min 170`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(ctx)
		if err != nil {
			printError("load config", err)
			return err
		}

		initial := map[string]float64{}
		if cmd.Flags().Changed("self") {
			initial[cfg.Height.AnchorPath] = heightSelf
		}
		store := form.NewStore(initial)
		f := field.NewHeightRangeField(store, heightRangeBase, cfg.HeightBounds(), cfg.Height.Distributions)
		f.AnchorPath = cfg.Height.AnchorPath

		switch len(rangeSlide) {
		case 0:
		case 2:
			f.Slide(ctx, rangeSlide[0], rangeSlide[1])
		default:
			return fmt.Errorf("--slide takes two values, got %d", len(rangeSlide))
		}
		if cmd.Flags().Changed("min") {
			f.EditMin(rangeLow)
			f.CommitMin(ctx)
		}
		if cmd.Flags().Changed("max") {
			f.EditMax(rangeHigh)
			f.CommitMax(ctx)
		}
		return printJSON(cmd, struct {
			Field field.HeightRangeView `json:"field"`
			Form  *form.Store           `json:"form"`
			Dirty []string              `json:"dirty"`
		}{f.View(), store, store.DirtyPaths()})
	},
}

func init() {
	heightCmd.Flags().StringVar(&heightValue, "value", "", "typed height in cm, empty clears the value")

	heightRangeCmd.Flags().Float64Var(&heightSelf, "self", 0, "your own height in cm")
	heightRangeCmd.Flags().Float64SliceVar(&rangeSlide, "slide", nil, "thumb positions in cm, two values")
	heightRangeCmd.Flags().StringVar(&rangeLow, "min", "", "typed minimum in cm")
	heightRangeCmd.Flags().StringVar(&rangeHigh, "max", "", "typed maximum in cm")

	rootCmd.AddCommand(heightCmd, heightRangeCmd)
}
