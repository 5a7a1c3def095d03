package iodataset_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnparks/internal/iodataset"
	"github.com/gnames/gnparks/internal/iotesting"
	"github.com/gnames/gnparks/pkg/config"
	"github.com/gnames/gnparks/pkg/dataset"
	"github.com/gnames/gnparks/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const obsCSV = "\uFEFFscientific_name,park_name,observations\n" +
	"Canis lupus,Yellowstone National Park,10\n" +
	"Canis lupus,Yellowstone National Park,10\n" +
	"Abies fraseri,Great Smoky Mountains National Park,5.0\n" +
	",Yosemite National Park,3\n" +
	"Picea rubens,NA,4\n" +
	"Lonely species,Yosemite National Park,\n"

const sppCSV = "category,scientific_name,common_names,conservation_status\n" +
	"Mammal,Canis lupus,Gray Wolf,Endangered\n" +
	"Vascular Plant,Abies fraseri,Fraser Fir,\n" +
	"Vascular Plant,Abies fraseri,Fraser Fir,\n" +
	"NA,Picea rubens,Red Spruce,\n" +
	"Bird,Lonely species,,N/A\n"

func TestLoadCSV(t *testing.T) {
	cfg := iotesting.Sources(t, obsCSV, sppCSV)

	tbl, stats, err := iodataset.New(cfg).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.ObservationRows)
	assert.Equal(t, 2, stats.ObservationsIncomplete)
	assert.Equal(t, 1, stats.ObservationsDuplicate)
	assert.Equal(t, 5, stats.SpeciesRows)
	assert.Equal(t, 1, stats.SpeciesIncomplete)
	assert.Equal(t, 1, stats.SpeciesDuplicate)
	assert.Equal(t, 2, stats.StatusFilled)
	assert.Equal(t, 3, stats.Merged)

	recs := tbl.Records()
	require.Len(t, recs, 3)

	assert.Equal(t, "Canis lupus", recs[0].ScientificName)
	assert.Equal(t, "Gray Wolf", recs[0].CommonNames)
	assert.Equal(t, "Endangered", recs[0].ConservationStatus)

	assert.Equal(t, 5, recs[1].Observations)
	assert.Equal(t, dataset.NonThreatened, recs[1].ConservationStatus)

	assert.Equal(t, 0, recs[2].Observations)
	assert.Equal(t, dataset.NonThreatened, recs[2].ConservationStatus)

	assert.Equal(t, []string{
		"Yellowstone National Park",
		"Great Smoky Mountains National Park",
		"Yosemite National Park",
	}, tbl.Parks())
}

func TestLoadShortRows(t *testing.T) {
	obs := "scientific_name,park_name,observations\n" +
		"Canis lupus,Zion,2\n" +
		"Ursus arctos,Zion,3\n" +
		"Lynx rufus,Zion\n" +
		"Vulpes vulpes\n"
	spp := "scientific_name,category,conservation_status\n" +
		"Canis lupus,Mammal,Endangered\n" +
		"Ursus arctos,Mammal\n" +
		"Ursus arctos,Mammal,\n" +
		"Lynx rufus,Mammal\n" +
		"Vulpes vulpes\n"
	cfg := iotesting.Sources(t, obs, spp)

	tbl, stats, err := iodataset.New(cfg).Load(context.Background())
	require.NoError(t, err)

	// Vulpes vulpes has no park and no category
	assert.Equal(t, 1, stats.ObservationsIncomplete)
	assert.Equal(t, 1, stats.SpeciesIncomplete)
	// short and full-width rows with the same values are duplicates
	assert.Equal(t, 1, stats.SpeciesDuplicate)

	recs := tbl.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, "Endangered", recs[0].ConservationStatus)
	assert.Equal(t, "Ursus arctos", recs[1].ScientificName)
	assert.Equal(t, dataset.NonThreatened, recs[1].ConservationStatus)
	assert.Equal(t, "Lynx rufus", recs[2].ScientificName)
	assert.Equal(t, 0, recs[2].Observations)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	good := iotesting.WriteFile(t, dir, "species.csv", sppCSV)
	obs := iotesting.WriteFile(t, dir, "obs.csv", obsCSV)
	badValue := iotesting.WriteFile(t, dir, "bad_value.csv",
		"scientific_name,park_name,observations\n"+
			"Canis lupus,Zion,1\n"+
			"Canis lupus,Bryce,many\n")
	noColumn := iotesting.WriteFile(t, dir, "no_column.csv",
		"scientific_name,category\nCanis lupus,Mammal\n")
	longRow := iotesting.WriteFile(t, dir, "long_row.csv",
		"scientific_name,park_name,observations\nCanis lupus,Zion,1,extra\n")
	empty := iotesting.WriteFile(t, dir, "empty.csv", "")

	tests := []struct {
		msg  string
		obs  string
		spp  string
		code gn.ErrorCode
	}{
		{"missing file", filepath.Join(dir, "nope.csv"), good, errcode.DataLoadOpenError},
		{"bad value", badValue, good, errcode.DataLoadValueError},
		{"missing column", obs, noColumn, errcode.DataLoadColumnError},
		{"too many fields", longRow, good, errcode.DataLoadReadError},
		{"empty file", empty, good, errcode.DataLoadReadError},
		{"bad source", "ftp://example.org/obs.csv", good, errcode.DataLoadSourceError},
		{"missing sqlite", "sqlite://" + filepath.Join(dir, "nope.db"), good,
			errcode.DataLoadOpenError},
	}

	for _, v := range tests {
		cfg := config.DataConfig{Observations: v.obs, Species: v.spp}
		_, _, err := iodataset.New(cfg).Load(context.Background())
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}
}

func TestLoadValueErrorLine(t *testing.T) {
	dir := t.TempDir()
	path := iotesting.WriteFile(t, dir, "obs.csv",
		"scientific_name,park_name,observations\n"+
			"Canis lupus,Zion,1\n"+
			"Canis lupus,Bryce,1.5\n")
	cfg := config.DataConfig{
		Observations: path,
		Species:      iotesting.WriteFile(t, dir, "spp.csv", sppCSV),
	}
	_, _, err := iodataset.New(cfg).Load(context.Background())
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, []any{"observations", "1.5", path, 3}, gnErr.Vars)
}

func TestLoadSQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "parks.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	stmts := []string{
		`CREATE TABLE obs (scientific_name TEXT, park_name TEXT, observations INTEGER)`,
		`INSERT INTO obs VALUES ('Canis lupus', 'Zion', 10), ('Ursus arctos', 'Zion', NULL),
			('Canis lupus', 'Zion', 10)`,
		`CREATE TABLE species (scientific_name TEXT, category TEXT,
			conservation_status TEXT)`,
		`INSERT INTO species VALUES ('Canis lupus', 'Mammal', 'Endangered'),
			('Ursus arctos', 'Mammal', NULL)`,
	}
	for _, v := range stmts {
		_, err = db.Exec(v)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	cfg := config.DataConfig{
		Observations: "sqlite://" + dbPath + "?table=obs",
		Species:      "sqlite://" + dbPath,
	}
	tbl, stats, err := iodataset.New(cfg).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ObservationsDuplicate)

	recs := tbl.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, 10, recs[0].Observations)
	assert.Equal(t, 0, recs[1].Observations)
	assert.Equal(t, dataset.NonThreatened, recs[1].ConservationStatus)
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "parks.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := config.DataConfig{
		Observations: "sqlite://" + dbPath,
		Species:      "sqlite://" + dbPath,
	}
	_, _, err = iodataset.New(cfg).Load(context.Background())
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DataLoadReadError, gnErr.Code)
}

func TestLoadPostgres(t *testing.T) {
	uri := iotesting.PostgresURI(t)
	cfg := config.DataConfig{Observations: uri, Species: uri}
	tbl, _, err := iodataset.New(cfg).Load(context.Background())
	require.NoError(t, err)
	assert.Positive(t, tbl.Len())
}
