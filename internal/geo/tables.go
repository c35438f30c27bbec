package geo

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// ReferenceTables are the five lookup sets the classifier works
// against. They are loaded once per save batch and never mutated, so
// they are safe to share across postings.
type ReferenceTables struct {
	StatesAbbrev mapset.Set[string] // 2-letter US state codes
	StatesFull   mapset.Set[string]
	USCities     mapset.Set[string]
	NonUSCities  mapset.Set[string]
	Countries    mapset.Set[string] // foreign country names
}

// LoadTables reads the five single-column CSV files from dir. Each file
// has a "name" header row; entries are lowercased on load.
func LoadTables(dir string) (*ReferenceTables, error) {
	t := &ReferenceTables{}
	files := []struct {
		name string
		dst  *mapset.Set[string]
	}{
		{"us_states_abbreviated.csv", &t.StatesAbbrev},
		{"us_states_full.csv", &t.StatesFull},
		{"us_cities.csv", &t.USCities},
		{"non_us_cities.csv", &t.NonUSCities},
		{"foreign_countries.csv", &t.Countries},
	}
	for _, f := range files {
		set, err := loadNameColumn(filepath.Join(dir, f.name))
		if err != nil {
			return nil, err
		}
		*f.dst = set
	}
	return t, nil
}

func loadNameColumn(path string) (mapset.Set[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	set := mapset.NewThreadUnsafeSet[string]()
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(row[0]))
		if i == 0 && v == "name" {
			continue
		}
		if v != "" {
			set.Add(v)
		}
	}
	return set, nil
}
