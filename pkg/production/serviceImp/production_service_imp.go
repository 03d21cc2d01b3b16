package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/importer"
	landrepo "github.com/rindang-net/digifarm/pkg/land/repository"
	"github.com/rindang-net/digifarm/pkg/production/repository"
	"github.com/rindang-net/digifarm/pkg/production/service"
	"github.com/rindang-net/digifarm/pkg/report"
)

const dateLayout = "2006-01-02"

type productionSvc struct {
	r     repository.ProductionRepository
	lands landrepo.LandRepository
	now   func() time.Time
}

func New(r repository.ProductionRepository, lands landrepo.LandRepository) service.ProductionService {
	return &productionSvc{r: r, lands: lands, now: time.Now}
}

func (s *productionSvc) Create(in service.ProductionInput) (*entities.Production, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	p := &entities.Production{
		LandID:               in.LandID,
		Commodity:            effectiveCommodity(in),
		PlantingDate:         in.PlantingDate,
		SeedCount:            in.SeedCount,
		EstimatedHarvestDate: in.EstimatedHarvestDate,
		Notes:                in.Notes,
		Status:               "planted",
	}
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productionSvc) Update(id string, in service.ProductionInput) (*entities.Production, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	p, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.LandID = in.LandID
	p.Commodity = effectiveCommodity(in)
	p.PlantingDate = in.PlantingDate
	p.SeedCount = in.SeedCount
	p.EstimatedHarvestDate = in.EstimatedHarvestDate
	p.Notes = in.Notes
	switch in.Status {
	case "":
		// keep current status
	case "planted", "growing":
		// harvested is terminal: reverting would strand the harvest fields on a
		// record whose status says they must be empty
		if p.Status == "harvested" {
			return nil, fmt.Errorf("%w: a harvested production cannot go back to %s", service.ErrInvalid, in.Status)
		}
		p.Status = in.Status
	default:
		// harvested is only reachable through RecordHarvest
		return nil, fmt.Errorf("%w: status must be planted or growing", service.ErrInvalid)
	}
	if err := s.r.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productionSvc) List() ([]entities.Production, error) { return s.r.List() }

func (s *productionSvc) Get(id string) (*entities.Production, error) { return s.r.FindByID(id) }

func (s *productionSvc) Delete(id string) error { return s.r.Delete(id) }

func (s *productionSvc) DeleteBatch(ids []string) error { return s.r.DeleteBatch(ids) }

func (s *productionSvc) RecordHarvest(id string, in service.HarvestInput) (*entities.Production, error) {
	if in.HarvestDate == "" {
		return nil, fmt.Errorf("%w: harvest_date is required", service.ErrInvalid)
	}
	if in.HarvestYieldKg <= 0 {
		return nil, fmt.Errorf("%w: harvest_yield_kg must be greater than 0", service.ErrInvalid)
	}
	if err := s.r.RecordHarvest(id, in.HarvestDate, in.HarvestYieldKg); err != nil {
		return nil, err
	}
	return s.r.FindByID(id)
}

func (s *productionSvc) ImportPlanting(src io.Reader, filename string) (*service.ImportSummary, error) {
	rows, err := parseSheet(src, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", service.ErrInvalid, err)
	}
	lands, err := s.lands.List()
	if err != nil {
		return nil, err
	}
	records, err := importer.ReconcilePlanting(rows, lands)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", service.ErrInvalid, err)
	}
	if err := s.r.CreateBatch(records); err != nil {
		return nil, err
	}
	return &service.ImportSummary{
		Inserted: len(records),
		Skipped:  len(rows) - len(records),
	}, nil
}

func (s *productionSvc) ImportHarvest(src io.Reader, filename string) (*service.ImportSummary, error) {
	rows, err := parseSheet(src, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", service.ErrInvalid, err)
	}
	lands, err := s.lands.List()
	if err != nil {
		return nil, err
	}
	snapshot, err := s.r.List()
	if err != nil {
		return nil, err
	}
	updates, skipped := importer.ReconcileHarvest(rows, lands, snapshot)

	sum := &service.ImportSummary{Skipped: skipped}
	for _, u := range updates {
		err := s.r.RecordHarvest(u.ProductionID, u.HarvestDate, u.HarvestYieldKg)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// stale production_id in the sheet: skip the row, keep going
			sum.Skipped++
			continue
		}
		if err != nil {
			// no rollback of already-applied rows
			return sum, err
		}
		sum.Updated++
	}
	return sum, nil
}

func (s *productionSvc) ExportCSV(w io.Writer) error {
	snapshot, err := s.r.List()
	if err != nil {
		return err
	}
	return importer.WriteCSV(w, snapshot)
}

func (s *productionSvc) ExportXLSX(w io.Writer) error {
	snapshot, err := s.r.List()
	if err != nil {
		return err
	}
	return importer.WriteXLSX(w, snapshot)
}

// CommodityStats splits harvested yield per commodity at the three-month mark
// and derives a trend from the two halves.
func (s *productionSvc) CommodityStats() ([]service.CommodityStat, error) {
	snapshot, err := s.r.List()
	if err != nil {
		return nil, err
	}
	cutoff := s.now().AddDate(0, -3, 0).Format(dateLayout)
	key := func(p entities.Production) string { return p.Commodity }

	current := report.GroupSum(snapshot, key, func(p entities.Production) (float64, bool) {
		if v, ok := harvestedYield(p); ok && *p.HarvestDate >= cutoff {
			return v, true
		}
		return 0, false
	})
	previous := report.GroupSum(snapshot, key, func(p entities.Production) (float64, bool) {
		if v, ok := harvestedYield(p); ok && *p.HarvestDate < cutoff {
			return v, true
		}
		return 0, false
	})

	out := make([]service.CommodityStat, len(current))
	for i, g := range current {
		out[i] = service.CommodityStat{
			Commodity:       g.Key,
			CurrentYieldKg:  g.Sum,
			PreviousYieldKg: previous[i].Sum,
			Count:           g.Count,
			Trend:           report.Trend(g.Sum, previous[i].Sum),
		}
	}
	return out, nil
}

// YieldByPeriod groups harvested yield by planting month, keeping the last six
// periods in snapshot order.
func (s *productionSvc) YieldByPeriod() ([]report.GroupTotal, error) {
	harvested, err := s.harvestedSnapshot()
	if err != nil {
		return nil, err
	}
	groups := report.GroupSum(harvested, periodOf, harvestedYield)
	if len(groups) > 6 {
		groups = groups[len(groups)-6:]
	}
	return groups, nil
}

func (s *productionSvc) ShareByCommodity() ([]report.GroupTotal, error) {
	harvested, err := s.harvestedSnapshot()
	if err != nil {
		return nil, err
	}
	return report.GroupSum(harvested, func(p entities.Production) string { return p.Commodity }, harvestedYield), nil
}

func (s *productionSvc) harvestedSnapshot() ([]entities.Production, error) {
	snapshot, err := s.r.List()
	if err != nil {
		return nil, err
	}
	var out []entities.Production
	for _, p := range snapshot {
		if p.Status == "harvested" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *productionSvc) validate(in service.ProductionInput) error {
	if in.LandID == "" {
		return fmt.Errorf("%w: land_id is required", service.ErrInvalid)
	}
	if _, err := s.lands.FindByID(in.LandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown land", service.ErrInvalid)
		}
		return err
	}
	if effectiveCommodity(in) == "" {
		return fmt.Errorf("%w: commodity is required", service.ErrInvalid)
	}
	if in.PlantingDate == "" {
		return fmt.Errorf("%w: planting_date is required", service.ErrInvalid)
	}
	if in.SeedCount < 1 {
		return fmt.Errorf("%w: seed_count must be greater than 0", service.ErrInvalid)
	}
	return nil
}

func effectiveCommodity(in service.ProductionInput) string {
	if in.Commodity == "Others" && in.CustomCommodity != nil && *in.CustomCommodity != "" {
		return *in.CustomCommodity
	}
	return in.Commodity
}

func harvestedYield(p entities.Production) (float64, bool) {
	if p.Status != "harvested" || p.HarvestYieldKg == nil || p.HarvestDate == nil {
		return 0, false
	}
	return *p.HarvestYieldKg, true
}

func periodOf(p entities.Production) string {
	d, err := time.Parse(dateLayout, p.PlantingDate)
	if err != nil {
		return p.PlantingDate
	}
	return d.Format("Jan 2006")
}

func parseSheet(src io.Reader, filename string) ([]importer.Row, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return importer.ParseCSV(src)
	}
	return importer.ParseXLSX(src)
}
