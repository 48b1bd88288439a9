package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maritime-sim/maritime-sim/data"
	"github.com/maritime-sim/maritime-sim/sim"
)

var (
	setFlags []string // repeated name=value parameter overrides
	noSave   bool     // skip results persistence
)

// runCmd executes a single simulation against the selected data source.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the resupply simulation",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := openSource()
		if err != nil {
			logrus.Fatalf("Opening data source: %v", err)
		}

		cfg, err := data.LoadConfig(src)
		if err != nil {
			logrus.Fatalf("Loading configuration: %v", err)
		}

		overrides, err := parseOverrides(setFlags)
		if err != nil {
			logrus.Fatalf("Parsing overrides: %v", err)
		}

		s, err := sim.NewSimulation(cfg, overrides)
		if err != nil {
			logrus.Fatalf("Building simulation: %v", err)
		}

		logrus.Infof("Starting simulation: %d ships, %d customers, horizon=%vh",
			len(cfg.Ships), len(cfg.Customers), s.Params.SimulationDuration)

		res := s.Run()
		res.Metrics.Print()

		if noSave {
			return
		}
		// Persistence is best-effort: a failed save never invalidates the
		// results already computed.
		if err := src.SaveResults(res); err != nil {
			logrus.Warnf("Saving results: %v (results remain available in memory)", err)
		}
	},
}

func init() {
	registerSourceFlags(runCmd)
	runCmd.Flags().StringArrayVar(&setFlags, "set", nil, "Parameter override name=value (can be repeated)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not persist the results document")

	rootCmd.AddCommand(runCmd)
}
