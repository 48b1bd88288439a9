package data

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maritime-sim/maritime-sim/sim"
)

// Shared table contract for the SQL-backed sources. Both SQLite and Postgres
// use the same column layout: wide tables for ships and customers, a flat
// (from, to, distance) table for the matrix, a (name, value, type) table for
// parameters, and an append-only results table keyed by run id.
const (
	queryShips = `SELECT id, name, capacity, speed, initial_location, initial_cargo
	FROM ships ORDER BY id`

	queryCustomers = `SELECT id, name, location, demand_rate, initial_inventory, min_inventory, max_inventory
	FROM customers ORDER BY id`

	queryDistances = `SELECT from_location, to_location, distance FROM distances`

	queryParams = `SELECT param_name, param_value, param_type FROM simulation_params`
)

func loadShips(db *sql.DB) ([]sim.ShipConfig, error) {
	rows, err := db.Query(queryShips)
	if err != nil {
		return nil, fmt.Errorf("query ships: %w", err)
	}
	defer rows.Close()

	var ships []sim.ShipConfig
	for rows.Next() {
		var s sim.ShipConfig
		if err := rows.Scan(&s.ID, &s.Name, &s.Capacity, &s.Speed, &s.InitialLocation, &s.InitialCargo); err != nil {
			return nil, fmt.Errorf("scan ship row: %w", err)
		}
		ships = append(ships, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ships: %w", err)
	}
	return ships, nil
}

func loadCustomers(db *sql.DB) ([]sim.CustomerConfig, error) {
	rows, err := db.Query(queryCustomers)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []sim.CustomerConfig
	for rows.Next() {
		var c sim.CustomerConfig
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.DemandRate, &c.InitialInventory, &c.MinInventory, &c.MaxInventory); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

func loadDistances(db *sql.DB) (sim.DistanceMatrix, error) {
	rows, err := db.Query(queryDistances)
	if err != nil {
		return nil, fmt.Errorf("query distances: %w", err)
	}
	defer rows.Close()

	matrix := sim.DistanceMatrix{}
	for rows.Next() {
		var from, to string
		var distance float64
		if err := rows.Scan(&from, &to, &distance); err != nil {
			return nil, fmt.Errorf("scan distance row: %w", err)
		}
		if matrix[from] == nil {
			matrix[from] = map[string]float64{}
		}
		matrix[from][to] = distance
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distances: %w", err)
	}
	return matrix, nil
}

// loadParams folds (name, value, type) rows onto the default parameter set.
// Rows naming parameters the engine does not know are skipped with a warning
// so schema additions don't break older binaries.
func loadParams(db *sql.DB) (sim.Params, error) {
	rows, err := db.Query(queryParams)
	if err != nil {
		return sim.Params{}, fmt.Errorf("query simulation params: %w", err)
	}
	defer rows.Close()

	params := sim.DefaultParams()
	for rows.Next() {
		var name, value, typ string
		if err := rows.Scan(&name, &value, &typ); err != nil {
			return sim.Params{}, fmt.Errorf("scan param row: %w", err)
		}
		if err := params.Apply(name, value); err != nil {
			if errors.Is(err, sim.ErrUnknownParam) {
				logrus.Warnf("ignoring unknown parameter %q from params table", name)
				continue
			}
			return sim.Params{}, fmt.Errorf("param %s (%s): %w", name, typ, err)
		}
	}
	if err := rows.Err(); err != nil {
		return sim.Params{}, fmt.Errorf("iterate params: %w", err)
	}
	return params, nil
}

// insertResults appends one row to the results table. The insert statement is
// supplied by the caller because placeholder syntax differs per driver.
func insertResults(db *sql.DB, insertStmt string, res *sim.Results) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	now := time.Now()
	runID := fmt.Sprintf("run_%s", now.Format("20060102_150405.000000"))
	if _, err := db.Exec(insertStmt, runID, now.Format(time.RFC3339), res.Metrics.OverallServiceLevel, string(raw)); err != nil {
		return fmt.Errorf("insert results row: %w", err)
	}
	logrus.Infof("results saved as %s", runID)
	return nil
}
