package data

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/maritime-sim/maritime-sim/sim"
)

const postgresInsertResults = `INSERT INTO simulation_results
	(run_id, created_at, overall_service_level, results_json)
	VALUES ($1, $2, $3, $4)`

// The configuration tables are owned by the warehouse; only the results table
// is created on demand.
const postgresResultsSchema = `
CREATE TABLE IF NOT EXISTS simulation_results (
	run_id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	overall_service_level DOUBLE PRECISION NOT NULL,
	results_json TEXT NOT NULL
)`

// PostgresSource reads the configuration snapshot from a Postgres warehouse
// using the same table contract as the SQLite source.
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgres connects to the database at databaseURL and verifies the
// connection.
func OpenPostgres(databaseURL string) (*PostgresSource, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("postgres source: DATABASE_URL is required")
	}
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}
	if _, err := db.Exec(postgresResultsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure results table: %w", err)
	}
	return &PostgresSource{db: db}, nil
}

// Close closes the connection pool.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

// Ships reads the ships table.
func (s *PostgresSource) Ships() ([]sim.ShipConfig, error) {
	return loadShips(s.db)
}

// Customers reads the customers table.
func (s *PostgresSource) Customers() ([]sim.CustomerConfig, error) {
	return loadCustomers(s.db)
}

// Distances reads the distances table into a nested matrix.
func (s *PostgresSource) Distances() (sim.DistanceMatrix, error) {
	return loadDistances(s.db)
}

// Params reads the simulation_params table over the defaults.
func (s *PostgresSource) Params() (sim.Params, error) {
	return loadParams(s.db)
}

// SaveResults appends one row to simulation_results.
func (s *PostgresSource) SaveResults(res *sim.Results) error {
	return insertResults(s.db, postgresInsertResults, res)
}
