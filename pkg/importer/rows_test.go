package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rindang-net/digifarm/entities"
)

func TestParseCSV(t *testing.T) {
	src := "\uFEFFLand Name,commodity,Planting_Date,seed-count\n" +
		"North Field,Tomatoes,2024-03-01,500\n" +
		",,,\n" + // fully blank row dropped
		"South Paddock,Garlic,2024-03-02,\n"

	rows, err := ParseCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Header aliases all collapse to the same normalized key.
	assert.Equal(t, "North Field", rows[0].Get("land_name"))
	assert.Equal(t, "2024-03-01", rows[0].Get("planting_date"))
	assert.Equal(t, "500", rows[0].Get("seed_count"))
	assert.Equal(t, "", rows[1].Get("seed_count"))
}

func TestParseCSVRaggedRows(t *testing.T) {
	src := "land_name,commodity,planting_date\nNorth Field,Tomatoes\n"
	rows, err := ParseCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Get("planting_date"))
}

func TestParseXLSXRoundTripsExport(t *testing.T) {
	land := testLands[0]
	yield := 77.5
	hd := "2024-06-10"
	prods := []entities.Production{
		{
			ID: "prod-1", LandID: land.ID, Land: &land,
			Commodity: "Tomatoes", PlantingDate: "2024-03-01", SeedCount: 500,
			HarvestDate: &hd, HarvestYieldKg: &yield, Status: "harvested",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, prods))

	rows, err := ParseXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "North Field", rows[0].Get("land_name"))
	assert.Equal(t, "2024-03-01", rows[0].Get("planting_date"))
	assert.Equal(t, "77.5", rows[0].Get("harvest_yield_kg"))
}

func TestParseXLSXRejectsGarbage(t *testing.T) {
	_, err := ParseXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestWriteCSVHeaderAndJoin(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []entities.Production{
		{Commodity: "Garlic", PlantingDate: "2024-01-05", SeedCount: 30, Status: "planted"},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "commodity,land_name,planting_date,seed_count,estimated_harvest_date,harvest_date,harvest_yield_kg,status", lines[0])
	// Dangling land reference exports as a blank land_name, not an error.
	assert.Equal(t, "Garlic,,2024-01-05,30,,,,planted", lines[1])
}
