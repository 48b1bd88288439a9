package data

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maritime-sim/maritime-sim/sim"
)

func TestOpenPostgres_RequiresURL(t *testing.T) {
	_, err := OpenPostgres("")
	assert.Error(t, err)
}

// The round trip needs a live database; point TEST_DATABASE_URL at one to run
// it.
func TestPostgresSource_SaveResults(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	src, err := OpenPostgres(url)
	require.NoError(t, err)
	defer src.Close()

	res := &sim.Results{Metrics: &sim.Metrics{OverallServiceLevel: 0.875}}
	require.NoError(t, src.SaveResults(res))

	var count int
	require.NoError(t, src.db.QueryRow("SELECT COUNT(*) FROM simulation_results").Scan(&count))
	assert.GreaterOrEqual(t, count, 1)
}
