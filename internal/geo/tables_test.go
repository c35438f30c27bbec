package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "us_states_abbreviated.csv", "name\nCA\ntx\n")
	writeTable(t, dir, "us_states_full.csv", "name\nCalifornia\nTexas\n")
	writeTable(t, dir, "us_cities.csv", "name\nAustin\n\nBoston\n")
	writeTable(t, dir, "non_us_cities.csv", "name\nLondon\n")
	writeTable(t, dir, "foreign_countries.csv", "name\nGermany\n")

	tables, err := LoadTables(dir)
	require.NoError(t, err)

	assert.True(t, tables.StatesAbbrev.Contains("ca"), "entries are lowercased")
	assert.True(t, tables.StatesAbbrev.Contains("tx"))
	assert.False(t, tables.StatesAbbrev.Contains("name"), "header row is skipped")
	assert.True(t, tables.StatesFull.Contains("california"))
	assert.True(t, tables.USCities.Contains("boston"), "blank lines are skipped")
	assert.True(t, tables.NonUSCities.Contains("london"))
	assert.True(t, tables.Countries.Contains("germany"))
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(t.TempDir())
	require.Error(t, err)
}
