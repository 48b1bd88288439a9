package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maritime-sim/maritime-sim/data"
)

var (
	// Data source selection flags shared by run, study, and seed. Empty
	// values fall back to the environment (.env / MARITIME_* variables).
	sourceKind   string // json, yaml, sqlite, or postgres
	dataDir      string // JSON data directory
	scenarioPath string // YAML scenario file
	sqlitePath   string // SQLite database file
	databaseURL  string // Postgres connection string
)

// registerSourceFlags attaches the shared data-source flags to a command.
func registerSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sourceKind, "source", "", "Data source kind: json, yaml, sqlite, or postgres (default from MARITIME_SOURCE)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "JSON data directory (default from MARITIME_DATA_DIR)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (default from MARITIME_SCENARIO)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database path (default from MARITIME_SQLITE_PATH)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (default from DATABASE_URL)")
}

// openSource resolves the data source from flags with environment fallback.
func openSource() (data.Source, error) {
	envCfg, err := data.LoadEnv()
	if err != nil {
		return nil, err
	}
	if sourceKind != "" {
		envCfg.Source = sourceKind
	}
	if dataDir != "" {
		envCfg.DataDir = dataDir
	}
	if scenarioPath != "" {
		envCfg.ScenarioPath = scenarioPath
	}
	if sqlitePath != "" {
		envCfg.SQLitePath = sqlitePath
	}
	if databaseURL != "" {
		envCfg.DatabaseURL = databaseURL
	}
	logrus.Infof("using %s data source", envCfg.Source)
	return envCfg.Open()
}

// parseOverrides turns repeated --set name=value flags into the override map
// handed to engine construction. Values that parse as numbers are applied as
// numbers; everything else stays a string (port_location).
func parseOverrides(setFlags []string) (map[string]any, error) {
	if len(setFlags) == 0 {
		return nil, nil
	}
	overrides := make(map[string]any, len(setFlags))
	for _, kv := range setFlags {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q (want name=value)", kv)
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			overrides[name] = f
		} else {
			overrides[name] = value
		}
	}
	return overrides, nil
}
