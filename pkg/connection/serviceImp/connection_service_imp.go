package serviceImp

import (
	"strings"

	"hinga/pkg/connection/service"
	"hinga/pkg/dataset"
)

type connectionSvc struct{ store *dataset.Store }

func New(store *dataset.Store) service.ConnectionService { return &connectionSvc{store: store} }

func (s *connectionSvc) filterByLocation(location, locationType string) ([]dataset.EstablishmentRecord, error) {
	if s.store == nil {
		return nil, dataset.ErrNotLoaded
	}
	var byProvince bool
	switch {
	case strings.EqualFold(locationType, "District"), locationType == "":
	case strings.EqualFold(locationType, "Province"):
		byProvince = true
	default:
		return nil, service.ErrBadLocationType
	}

	out := make([]dataset.EstablishmentRecord, 0)
	for _, r := range s.store.Establishments {
		if byProvince {
			if strings.EqualFold(r.Province, location) {
				out = append(out, r)
			}
		} else if strings.EqualFold(r.District, location) {
			out = append(out, r)
		}
	}
	return out, nil
}

func project(r dataset.EstablishmentRecord) service.Establishment {
	return service.Establishment{
		SectionCode:     r.SectionCode,
		SectionName:     r.SectionName,
		District:        r.District,
		TotalWorkers:    r.TotalWorkers,
		AnnualTurnover:  r.AnnualTurnover,
		EmployedCapital: r.EmployedCapital,
	}
}

func (s *connectionSvc) FindCooperatives(location, locationType string) ([]service.Establishment, error) {
	rows, err := s.filterByLocation(location, locationType)
	if err != nil {
		return nil, err
	}
	out := make([]service.Establishment, 0)
	for _, r := range rows {
		if r.Cooperative {
			out = append(out, project(r))
		}
	}
	return out, nil
}

func (s *connectionSvc) FindBuyersAndProcessors(location, locationType string, minWorkers int, minTurnover float64) ([]service.Establishment, []service.Establishment, error) {
	rows, err := s.filterByLocation(location, locationType)
	if err != nil {
		return nil, nil, err
	}
	buyers := make([]service.Establishment, 0)
	processors := make([]service.Establishment, 0)
	for _, r := range rows {
		big := r.TotalWorkers >= minWorkers || r.AnnualTurnover >= minTurnover
		if !big {
			continue
		}
		if r.FoodTrade {
			buyers = append(buyers, project(r))
		}
		if r.FoodProcessing {
			processors = append(processors, project(r))
		}
	}
	return buyers, processors, nil
}

func (s *connectionSvc) FindExporters(location, locationType string) ([]service.Establishment, error) {
	rows, err := s.filterByLocation(location, locationType)
	if err != nil {
		return nil, err
	}
	out := make([]service.Establishment, 0)
	for _, r := range rows {
		if r.Exporter {
			out = append(out, project(r))
		}
	}
	return out, nil
}
