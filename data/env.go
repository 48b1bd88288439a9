package data

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// EnvConfig selects and parameterizes a Source from the environment. CLI
// flags override these values; the environment overrides the defaults.
type EnvConfig struct {
	Source       string `env:"MARITIME_SOURCE" envDefault:"json"`
	DataDir      string `env:"MARITIME_DATA_DIR" envDefault:"./data_files"`
	ScenarioPath string `env:"MARITIME_SCENARIO" envDefault:"./scenario.yaml"`
	SQLitePath   string `env:"MARITIME_SQLITE_PATH" envDefault:"./data_files/maritime.db"`
	DatabaseURL  string `env:"DATABASE_URL"`
}

// LoadEnv reads a .env file if present, then parses the environment.
func LoadEnv() (EnvConfig, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found (using environment variables)")
	}
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Open builds the Source the configuration selects.
func (c EnvConfig) Open() (Source, error) {
	switch c.Source {
	case "json":
		return NewJSONSource(c.DataDir)
	case "yaml":
		return NewScenarioSource(c.ScenarioPath), nil
	case "sqlite":
		return OpenSQLite(c.SQLitePath)
	case "postgres":
		return OpenPostgres(c.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown data source %q (want json, yaml, sqlite, or postgres)", c.Source)
	}
}
