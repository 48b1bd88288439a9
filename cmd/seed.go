package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maritime-sim/maritime-sim/data"
)

var (
	seedDB      string // SQLite database to create or refill
	seedFromDir string // optional JSON directory to seed from
)

// seedCmd populates a SQLite database with a configuration snapshot. Without
// --from-dir it writes the built-in example fleet, which is enough for a
// first run of the simulator.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create and populate a SQLite configuration database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := data.ExampleConfig()
		if seedFromDir != "" {
			src, err := data.NewJSONSource(seedFromDir)
			if err != nil {
				logrus.Fatalf("Opening JSON source: %v", err)
			}
			loaded, err := data.LoadConfig(src)
			if err != nil {
				logrus.Fatalf("Loading configuration from %s: %v", seedFromDir, err)
			}
			cfg = loaded
		}

		store, err := data.OpenSQLite(seedDB)
		if err != nil {
			logrus.Fatalf("Opening SQLite database: %v", err)
		}
		defer store.Close()

		if err := store.Seed(cfg); err != nil {
			logrus.Fatalf("Seeding database: %v", err)
		}
		fmt.Printf("seeded %s: %d ships, %d customers\n", seedDB, len(cfg.Ships), len(cfg.Customers))
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDB, "db", "./data_files/maritime.db", "SQLite database path to seed")
	seedCmd.Flags().StringVar(&seedFromDir, "from-dir", "", "Seed from a JSON data directory instead of the example fleet")

	rootCmd.AddCommand(seedCmd)
}
