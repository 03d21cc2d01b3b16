package service

import (
	"errors"
	"io"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/report"
)

var ErrInvalid = errors.New("invalid input")

// ProductionInput carries the production form fields. A commodity of "Others"
// with a custom label stores the label itself, matching the form behavior.
type ProductionInput struct {
	LandID               string  `json:"land_id"`
	Commodity            string  `json:"commodity"`
	CustomCommodity      *string `json:"custom_commodity"`
	PlantingDate         string  `json:"planting_date"`
	SeedCount            int     `json:"seed_count"`
	EstimatedHarvestDate *string `json:"estimated_harvest_date"`
	Notes                *string `json:"notes"`
	Status               string  `json:"status"`
}

// HarvestInput records one finished cycle.
type HarvestInput struct {
	HarvestDate    string  `json:"harvest_date"`
	HarvestYieldKg float64 `json:"harvest_yield_kg"`
}

// ImportSummary reports what a spreadsheet import did.
type ImportSummary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// CommodityStat is one commodity card: yield over the last three months
// against everything before, with the derived trend.
type CommodityStat struct {
	Commodity       string             `json:"commodity"`
	CurrentYieldKg  float64            `json:"current_yield_kg"`
	PreviousYieldKg float64            `json:"previous_yield_kg"`
	Count           int                `json:"count"`
	Trend           report.TrendResult `json:"trend"`
}

type ProductionService interface {
	Create(in ProductionInput) (*entities.Production, error)
	Update(id string, in ProductionInput) (*entities.Production, error)
	List() ([]entities.Production, error)
	Get(id string) (*entities.Production, error)
	Delete(id string) error
	DeleteBatch(ids []string) error
	RecordHarvest(id string, in HarvestInput) (*entities.Production, error)

	ImportPlanting(src io.Reader, filename string) (*ImportSummary, error)
	ImportHarvest(src io.Reader, filename string) (*ImportSummary, error)
	ExportCSV(w io.Writer) error
	ExportXLSX(w io.Writer) error

	CommodityStats() ([]CommodityStat, error)
	YieldByPeriod() ([]report.GroupTotal, error)
	ShareByCommodity() ([]report.GroupTotal, error)
}
