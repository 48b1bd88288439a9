package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maritime-sim/maritime-sim/data"
	"github.com/maritime-sim/maritime-sim/sim"
)

var (
	studyParam  string    // parameter to vary
	studyValues []float64 // values to run
	studyOut    string    // optional JSON output path
)

// studyCmd runs the simulation once per value of a single parameter, each run
// fully isolated, and prints the resulting metrics side by side.
var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Run a parameter study across a set of values",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := openSource()
		if err != nil {
			logrus.Fatalf("Opening data source: %v", err)
		}

		cfg, err := data.LoadConfig(src)
		if err != nil {
			logrus.Fatalf("Loading configuration: %v", err)
		}

		points, err := sim.RunParameterStudy(cfg, studyParam, studyValues)
		if err != nil {
			logrus.Fatalf("Parameter study failed: %v", err)
		}

		fmt.Printf("=== Parameter Study: %s ===\n", studyParam)
		for _, p := range points {
			fmt.Printf("%s = %-10v service level %.2f%%, stockout events %d\n",
				p.ParamName, p.ParamValue,
				p.Metrics.OverallServiceLevel*100, p.Metrics.TotalStockoutEvents)
		}

		if studyOut == "" {
			return
		}
		raw, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			logrus.Fatalf("Encoding study results: %v", err)
		}
		if err := os.WriteFile(studyOut, raw, 0o644); err != nil {
			logrus.Fatalf("Writing study results: %v", err)
		}
		logrus.Infof("study results written to %s", studyOut)
	},
}

func init() {
	registerSourceFlags(studyCmd)
	studyCmd.Flags().StringVar(&studyParam, "param", "", "Name of the parameter to vary")
	studyCmd.Flags().Float64SliceVar(&studyValues, "values", nil, "Comma-separated values to run")
	studyCmd.Flags().StringVar(&studyOut, "out", "", "Optional path for the study results JSON")
	_ = studyCmd.MarkFlagRequired("param")
	_ = studyCmd.MarkFlagRequired("values")

	rootCmd.AddCommand(studyCmd)
}
