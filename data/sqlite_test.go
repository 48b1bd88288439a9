package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maritime-sim/maritime-sim/sim"
)

func openTestDB(t *testing.T) *SQLiteSource {
	t.Helper()
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	src := openTestDB(t)

	for _, table := range []string{"ships", "customers", "distances", "simulation_params", "simulation_results"} {
		var count int
		err := src.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err, "expected table %s to exist", table)
		assert.Equal(t, 0, count)
	}
}

func TestSQLiteSource_SeedAndLoadRoundTrip(t *testing.T) {
	src := openTestDB(t)
	example := ExampleConfig()
	require.NoError(t, src.Seed(example))

	cfg, err := LoadConfig(src)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	// Rows come back ordered by id, which matches the example layout.
	assert.Equal(t, example.Ships, cfg.Ships)
	assert.Equal(t, example.Customers, cfg.Customers)
	assert.Equal(t, example.Distances, cfg.Distances)
	assert.Equal(t, example.Params, cfg.Params)
}

func TestSQLiteSource_SeedReplacesPreviousSnapshot(t *testing.T) {
	src := openTestDB(t)
	require.NoError(t, src.Seed(ExampleConfig()))

	smaller := ExampleConfig()
	smaller.Ships = smaller.Ships[:1]
	require.NoError(t, src.Seed(smaller))

	ships, err := src.Ships()
	require.NoError(t, err)
	assert.Len(t, ships, 1)
}

func TestSQLiteSource_UnknownParamRowIsSkipped(t *testing.T) {
	src := openTestDB(t)
	require.NoError(t, src.Seed(ExampleConfig()))
	_, err := src.db.Exec(`INSERT INTO simulation_params (param_name, param_value, param_type)
		VALUES ('warp_factor', '9', 'float')`)
	require.NoError(t, err)

	params, err := src.Params()
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultParams(), params)
}

func TestSQLiteSource_SaveResultsAppendsRow(t *testing.T) {
	src := openTestDB(t)

	res := &sim.Results{Metrics: &sim.Metrics{OverallServiceLevel: 0.875}}
	require.NoError(t, src.SaveResults(res))

	var count int
	var level float64
	require.NoError(t, src.db.QueryRow("SELECT COUNT(*) FROM simulation_results").Scan(&count))
	require.NoError(t, src.db.QueryRow("SELECT overall_service_level FROM simulation_results").Scan(&level))
	assert.Equal(t, 1, count)
	assert.Equal(t, 0.875, level)
}
