package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rindang-net/digifarm/entities"
)

// exportHeader mirrors the planting-import columns so an export round-trips.
var exportHeader = []string{
	"commodity", "land_name", "planting_date", "seed_count",
	"estimated_harvest_date", "harvest_date", "harvest_yield_kg", "status",
}

func exportRecord(p entities.Production) []string {
	landName := ""
	if p.Land != nil {
		landName = p.Land.Name
	}
	rec := []string{
		p.Commodity,
		landName,
		p.PlantingDate,
		fmt.Sprintf("%d", p.SeedCount),
		deref(p.EstimatedHarvestDate),
		deref(p.HarvestDate),
		"",
		p.Status,
	}
	if p.HarvestYieldKg != nil {
		rec[6] = fmt.Sprintf("%g", *p.HarvestYieldKg)
	}
	return rec
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WriteCSV streams the production snapshot as a header-led CSV.
func WriteCSV(w io.Writer, productions []entities.Production) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range productions {
		if err := cw.Write(exportRecord(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the production snapshot to a single-sheet workbook.
func WriteXLSX(w io.Writer, productions []entities.Production) error {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Productions"
	x.SetSheetName("Sheet1", sheet)

	cells := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		cells[i] = h
	}
	if err := x.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}
	for i, p := range productions {
		rec := exportRecord(p)
		row := make([]any, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return x.Write(w)
}
