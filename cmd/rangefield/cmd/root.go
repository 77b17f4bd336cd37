package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uyouii/rangefield/config"
	"github.com/uyouii/rangefield/utils"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rangefield",
	Short: "Constrained height and income range fields",
	Long: `rangefield drives the height and income slider fields from the command line.

Commands:
  height        - single height value with the group distributions
  height-range  - partner height range bounded relative to your own height
  income        - income range on a linear, log or percentile slider
  plot          - export the distribution chart as an image`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		utils.SetLogger(logger)
		return nil
	},
}

func Execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger(context.Background()).Error("rangefield panic",
				zap.Any("panic", r), zap.String("stack", utils.GetPanicInfo()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml), defaults are used when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(ctx, cfgFile)
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
