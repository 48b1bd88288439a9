package data

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/maritime-sim/maritime-sim/sim"
)

// sqliteSchema creates the configuration and results tables. Kept idempotent
// so opening an existing database is safe.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS ships (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	capacity REAL NOT NULL,
	speed REAL NOT NULL,
	initial_location TEXT NOT NULL,
	initial_cargo REAL NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS customers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	location TEXT NOT NULL,
	demand_rate REAL NOT NULL,
	initial_inventory REAL NOT NULL,
	min_inventory REAL NOT NULL,
	max_inventory REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS distances (
	from_location TEXT NOT NULL,
	to_location TEXT NOT NULL,
	distance REAL NOT NULL,
	PRIMARY KEY (from_location, to_location)
);
CREATE TABLE IF NOT EXISTS simulation_params (
	param_name TEXT PRIMARY KEY,
	param_value TEXT NOT NULL,
	param_type TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS simulation_results (
	run_id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	overall_service_level REAL NOT NULL,
	results_json TEXT NOT NULL
);
`

const sqliteInsertResults = `INSERT INTO simulation_results
	(run_id, created_at, overall_service_level, results_json)
	VALUES (?, ?, ?, ?)`

// SQLiteSource reads the configuration snapshot from a local SQLite database
// and appends results documents to its simulation_results table.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema
// exists.
func OpenSQLite(path string) (*SQLiteSource, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure sqlite schema: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// Close closes the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Seed replaces the configuration tables with the given snapshot. Used by the
// seed command and by tests to provision a fresh database.
func (s *SQLiteSource) Seed(cfg *sim.Config) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"ships", "customers", "distances", "simulation_params"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for _, ship := range cfg.Ships {
		if _, err := tx.Exec(`INSERT INTO ships (id, name, capacity, speed, initial_location, initial_cargo)
			VALUES (?, ?, ?, ?, ?, ?)`,
			ship.ID, ship.Name, ship.Capacity, ship.Speed, ship.InitialLocation, ship.InitialCargo); err != nil {
			return fmt.Errorf("insert ship %s: %w", ship.ID, err)
		}
	}
	for _, customer := range cfg.Customers {
		if _, err := tx.Exec(`INSERT INTO customers (id, name, location, demand_rate, initial_inventory, min_inventory, max_inventory)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			customer.ID, customer.Name, customer.Location, customer.DemandRate,
			customer.InitialInventory, customer.MinInventory, customer.MaxInventory); err != nil {
			return fmt.Errorf("insert customer %s: %w", customer.ID, err)
		}
	}
	for from, row := range cfg.Distances {
		for to, distance := range row {
			if _, err := tx.Exec(`INSERT INTO distances (from_location, to_location, distance)
				VALUES (?, ?, ?)`, from, to, distance); err != nil {
				return fmt.Errorf("insert distance %s->%s: %w", from, to, err)
			}
		}
	}
	for name, entry := range paramRows(cfg.Params) {
		if _, err := tx.Exec(`INSERT INTO simulation_params (param_name, param_value, param_type)
			VALUES (?, ?, ?)`, name, entry.value, entry.typ); err != nil {
			return fmt.Errorf("insert param %s: %w", name, err)
		}
	}
	return tx.Commit()
}

type paramRow struct {
	value string
	typ   string
}

func paramRows(p sim.Params) map[string]paramRow {
	return map[string]paramRow{
		"simulation_duration":     {fmt.Sprintf("%v", p.SimulationDuration), "float"},
		"time_step":               {fmt.Sprintf("%v", p.TimeStep), "float"},
		"resupply_threshold_days": {fmt.Sprintf("%v", p.ResupplyThresholdDays), "float"},
		"loading_rate":            {fmt.Sprintf("%v", p.LoadingRate), "float"},
		"unloading_rate":          {fmt.Sprintf("%v", p.UnloadingRate), "float"},
		"port_resupply_delay":     {fmt.Sprintf("%v", p.PortResupplyDelay), "float"},
		"port_location":           {p.PortLocation, "string"},
		"random_seed":             {fmt.Sprintf("%d", p.RandomSeed), "int"},
	}
}

// Ships reads the ships table.
func (s *SQLiteSource) Ships() ([]sim.ShipConfig, error) {
	return loadShips(s.db)
}

// Customers reads the customers table.
func (s *SQLiteSource) Customers() ([]sim.CustomerConfig, error) {
	return loadCustomers(s.db)
}

// Distances reads the distances table into a nested matrix.
func (s *SQLiteSource) Distances() (sim.DistanceMatrix, error) {
	return loadDistances(s.db)
}

// Params reads the simulation_params table over the defaults.
func (s *SQLiteSource) Params() (sim.Params, error) {
	return loadParams(s.db)
}

// SaveResults appends one row to simulation_results.
func (s *SQLiteSource) SaveResults(res *sim.Results) error {
	return insertResults(s.db, sqliteInsertResults, res)
}
