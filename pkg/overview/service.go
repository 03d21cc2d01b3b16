// Package overview serves the dashboard landing page: stat cards, the
// 30-day planting calendar, ongoing activities and the 6-month productivity
// trend. Each read fetches one snapshot and runs the report transforms on it.
package overview

import (
	"time"

	"github.com/rindang-net/digifarm/entities"
	activityrepo "github.com/rindang-net/digifarm/pkg/activity/repository"
	landrepo "github.com/rindang-net/digifarm/pkg/land/repository"
	productionrepo "github.com/rindang-net/digifarm/pkg/production/repository"
	"github.com/rindang-net/digifarm/pkg/report"
)

const (
	calendarDays = 30
	calendarCap  = 5
	trendMonths  = 6
	ongoingCap   = 5
)

// Stats feeds the dashboard stat cards.
type Stats struct {
	ProductiveLandM2 float64 `json:"productive_land_m2"`
	VacantLandM2     float64 `json:"vacant_land_m2"`
	ActiveCrops      int     `json:"active_crops"`
	TotalProductions int     `json:"total_productions"`
	TotalHarvestKg   float64 `json:"total_harvest_kg"`
	HarvestedCount   int     `json:"harvested_count"`
}

// MonthYield is one point of the productivity trend.
type MonthYield struct {
	Month   string  `json:"month"`
	YieldKg float64 `json:"yield_kg"`
}

type Service struct {
	lands       landrepo.LandRepository
	productions productionrepo.ProductionRepository
	activities  activityrepo.ActivityRepository
	now         func() time.Time
}

func NewService(l landrepo.LandRepository, p productionrepo.ProductionRepository, a activityrepo.ActivityRepository) *Service {
	return &Service{lands: l, productions: p, activities: a, now: time.Now}
}

func (s *Service) Stats() (*Stats, error) {
	lands, err := s.lands.List()
	if err != nil {
		return nil, err
	}
	prods, err := s.productions.List()
	if err != nil {
		return nil, err
	}

	area := func(status string) float64 {
		return report.SumBy(lands, func(l entities.Land) (float64, bool) {
			return l.AreaM2, l.Status == status
		})
	}
	return &Stats{
		ProductiveLandM2: area("active"),
		VacantLandM2:     area("vacant"),
		ActiveCrops:      report.CountBy(prods, func(p entities.Production) bool { return p.Active() }),
		TotalProductions: len(prods),
		TotalHarvestKg: report.SumBy(prods, func(p entities.Production) (float64, bool) {
			if p.Status != "harvested" || p.HarvestYieldKg == nil {
				return 0, false
			}
			return *p.HarvestYieldKg, true
		}),
		HarvestedCount: report.CountBy(prods, func(p entities.Production) bool { return p.Status == "harvested" }),
	}, nil
}

// Calendar merges upcoming expected harvests and plantings over the next 30
// days into at most five entries.
func (s *Service) Calendar() ([]report.Event, error) {
	prods, err := s.productions.List()
	if err != nil {
		return nil, err
	}
	w := report.DayWindow(s.now(), calendarDays)

	upcoming := report.Filter(prods, func(p entities.Production) string {
		if p.EstimatedHarvestDate == nil {
			return ""
		}
		return *p.EstimatedHarvestDate
	}, w)
	harvests := make([]report.Event, 0, len(upcoming))
	for _, p := range upcoming {
		harvests = append(harvests, report.Event{
			ID: p.ID, Date: *p.EstimatedHarvestDate, Label: p.Commodity,
			Kind: report.EventHarvest, Status: p.Status,
		})
	}

	planted := report.Filter(prods, func(p entities.Production) string { return p.PlantingDate }, w)
	plantings := make([]report.Event, 0, len(planted))
	for _, p := range planted {
		plantings = append(plantings, report.Event{
			ID: p.ID, Date: p.PlantingDate, Label: p.Commodity,
			Kind: report.EventPlanting, Status: p.Status,
		})
	}

	return report.MergeEvents(calendarCap, harvests, plantings), nil
}

// Ongoing returns the first five not-yet-completed activities.
func (s *Service) Ongoing() ([]entities.Activity, error) {
	all, err := s.activities.List(activityrepo.Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Activity, 0, ongoingCap)
	for _, a := range all {
		if a.Status == "completed" {
			continue
		}
		out = append(out, a)
		if len(out) == ongoingCap {
			break
		}
	}
	return out, nil
}

// Productivity sums harvested yield per calendar month over the last six
// months, oldest first.
func (s *Service) Productivity() ([]MonthYield, error) {
	prods, err := s.productions.List()
	if err != nil {
		return nil, err
	}
	now := s.now()
	recent := report.Filter(prods, harvestDateOf, report.MonthWindow(now, trendMonths))

	buckets := report.MonthBuckets(now, trendMonths)
	out := make([]MonthYield, 0, len(buckets))
	for _, b := range buckets {
		sum := report.SumBy(recent, func(p entities.Production) (float64, bool) {
			if p.HarvestYieldKg == nil || !b.Contains(*p.HarvestDate) {
				return 0, false
			}
			return *p.HarvestYieldKg, true
		})
		out = append(out, MonthYield{Month: b.Label(), YieldKg: sum})
	}
	return out, nil
}

func harvestDateOf(p entities.Production) string {
	if p.HarvestDate == nil {
		return ""
	}
	return *p.HarvestDate
}
