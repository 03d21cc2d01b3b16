package importer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rindang-net/digifarm/entities"
)

// ErrNoValidRecords aborts a planting import in which every row was dropped.
var ErrNoValidRecords = errors.New("no valid records found, ensure columns: land_name, commodity, planting_date, seed_count")

// ReconcilePlanting maps spreadsheet rows to insertable productions. A row
// must resolve its land_name against the snapshot (case-insensitive) and carry
// a commodity and planting date; rows failing any of these are dropped
// silently. Dropping every row is an import failure.
func ReconcilePlanting(rows []Row, lands []entities.Land) ([]entities.Production, error) {
	var out []entities.Production
	for _, row := range rows {
		land := findLand(lands, row.Get("land_name"))
		commodity := row.Get("commodity")
		plantingDate := row.Get("planting_date")
		if land == nil || commodity == "" || plantingDate == "" {
			continue
		}

		// Non-numeric seed counts coerce to 0 rather than blocking the row.
		seeds, _ := strconv.Atoi(row.Get("seed_count"))

		p := entities.Production{
			LandID:       land.ID,
			Commodity:    commodity,
			PlantingDate: plantingDate,
			SeedCount:    seeds,
			Status:       "planted",
		}
		if v := row.Get("estimated_harvest_date"); v != "" {
			p.EstimatedHarvestDate = &v
		}
		if v := row.Get("notes"); v != "" {
			p.Notes = &v
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoValidRecords
	}
	return out, nil
}

// findLand resolves a land by case-insensitive exact name match. Duplicate
// names resolve to the first match in snapshot order.
func findLand(lands []entities.Land, name string) *entities.Land {
	if name == "" {
		return nil
	}
	for i := range lands {
		if strings.EqualFold(lands[i].Name, name) {
			return &lands[i]
		}
	}
	return nil
}
