package importer

import (
	"strconv"
	"strings"

	"github.com/rindang-net/digifarm/entities"
)

// HarvestUpdate records one resolved harvest row. Applying it sets the
// target's harvest fields and flips its status to harvested in a single
// store update.
type HarvestUpdate struct {
	ProductionID   string
	HarvestDate    string
	HarvestYieldKg float64
}

// ReconcileHarvest resolves each row to a production, either by a direct
// production_id or by the (land_name, commodity, planting_date) natural key.
// Land name and commodity match case-insensitively; the planting date must
// match the stored string exactly. Rows that do not resolve, or that lack a
// harvest date or a positive yield, are skipped individually; they never abort
// the batch. The skipped count is reported back for the import summary.
func ReconcileHarvest(rows []Row, lands []entities.Land, productions []entities.Production) (updates []HarvestUpdate, skipped int) {
	for _, row := range rows {
		id := row.Get("production_id")
		if id == "" {
			id = resolveByNaturalKey(row, lands, productions)
		}

		harvestDate := row.Get("harvest_date")
		yield, _ := strconv.ParseFloat(row.Get("harvest_yield_kg"), 64)
		if id == "" || harvestDate == "" || yield <= 0 {
			skipped++
			continue
		}
		updates = append(updates, HarvestUpdate{
			ProductionID:   id,
			HarvestDate:    harvestDate,
			HarvestYieldKg: yield,
		})
	}
	return updates, skipped
}

func resolveByNaturalKey(row Row, lands []entities.Land, productions []entities.Production) string {
	name := row.Get("land_name")
	commodity := row.Get("commodity")
	plantingDate := row.Get("planting_date")
	if name == "" || commodity == "" || plantingDate == "" {
		return ""
	}
	land := findLand(lands, name)
	if land == nil {
		return ""
	}
	// First match wins when the triple is ambiguous.
	for i := range productions {
		p := &productions[i]
		if p.LandID == land.ID &&
			strings.EqualFold(p.Commodity, commodity) &&
			p.PlantingDate == plantingDate {
			return p.ID
		}
	}
	return ""
}
