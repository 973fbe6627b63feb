package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles reads the three tabular sources into a Store. Any read or
// parse failure is returned as an error; the caller treats it as fatal
// (there is no partial-service mode, every query needs all three datasets).
func LoadFromFiles(productionCSV, consumptionCSV, establishmentXLSX string) (*Store, error) {
	s := &Store{}

	if err := s.loadProductionCSV(productionCSV); err != nil {
		return nil, fmt.Errorf("production dataset: %w", err)
	}
	if err := s.loadConsumptionCSV(consumptionCSV); err != nil {
		return nil, fmt.Errorf("consumption dataset: %w", err)
	}
	if err := s.loadEstablishmentXLSX(establishmentXLSX); err != nil {
		return nil, fmt.Errorf("establishment dataset: %w", err)
	}

	if s.Warnings.Production > 0 {
		log.Printf("[dataset] production: %d numeric cells coerced to 0", s.Warnings.Production)
	}
	if s.Warnings.Consumption > 0 {
		log.Printf("[dataset] consumption: %d numeric cells coerced to 0", s.Warnings.Consumption)
	}
	if s.Warnings.Establishment > 0 {
		log.Printf("[dataset] establishment: %d numeric cells coerced to 0", s.Warnings.Establishment)
	}
	return s, nil
}

// norm normalizes a header cell for alias matching: BOM strip, lowercase,
// separators removed.
func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type header struct{ idx map[string]int }

func newHeader(cells []string) header {
	h := header{idx: map[string]int{}}
	for i, c := range cells {
		h.idx[norm(c)] = i
	}
	return h
}

// findAny returns the column index of the first matching alias, or -1.
func (h header) findAny(keys ...string) int {
	for _, k := range keys {
		if i, ok := h.idx[norm(k)]; ok {
			return i
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// coerceFloat is the explicit numeric-coercion policy: fields declared
// numeric parse to float64, anything unparseable or missing becomes 0 and
// bumps the dataset's warning counter.
func coerceFloat(s string, warn *int) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*warn++
		return 0
	}
	return v
}

func coerceInt(s string, warn *int) int {
	return int(coerceFloat(s, warn))
}

// coerceBool treats any nonzero numeric (and "true"/"yes") as set.
func coerceBool(s string, warn *int) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y":
		return true
	case "false", "no", "n", "":
		return false
	}
	return coerceFloat(s, warn) != 0
}

func (s *Store) loadProductionCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return err
	}
	h := newHeader(head)

	cDist := h.findAny("district", "district_name")
	cCrop := h.findAny("crop", "crop_name")
	cSeason := h.findAny("season", "agricultural_season")
	cArea := h.findAny("avg_area_ha", "average_area_ha", "area_ha", "avg_planted_area")
	cYield := h.findAny("avg_yield_kg_ha", "average_yield_kg_ha", "yield_kg_ha", "avg_yield")
	cProd := h.findAny("total_production_kg", "production_kg", "total_production")
	cObs := h.findAny("observations", "obs", "n", "records")

	if cDist == -1 || cCrop == -1 || cArea == -1 || cYield == -1 {
		return fmt.Errorf("missing required columns, found headers: %v", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		row := ProductionRecord{
			District:          cell(rec, cDist),
			Crop:              cell(rec, cCrop),
			Season:            cell(rec, cSeason),
			AvgAreaHa:         coerceFloat(cell(rec, cArea), &s.Warnings.Production),
			AvgYieldKgHa:      coerceFloat(cell(rec, cYield), &s.Warnings.Production),
			TotalProductionKg: coerceFloat(cell(rec, cProd), &s.Warnings.Production),
			Observations:      coerceInt(cell(rec, cObs), &s.Warnings.Production),
		}
		// rows with zero/garbage planted area carry no signal
		if row.AvgAreaHa <= 0 {
			continue
		}
		s.Production = append(s.Production, row)
	}
	return nil
}

func (s *Store) loadConsumptionCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return err
	}
	h := newHeader(head)

	cDist := h.findAny("district", "district_name")
	cProv := h.findAny("province", "province_name")
	cCrop := h.findAny("crop", "crop_name", "item")
	cQty := h.findAny("total_quantity_kg", "quantity_kg", "weighted_quantity_kg")
	cVal := h.findAny("total_value_rwf", "value_rwf", "weighted_value", "total_value")
	cHH := h.findAny("households", "num_households", "hh")

	if cDist == -1 || cCrop == -1 || cQty == -1 || cVal == -1 {
		return fmt.Errorf("missing required columns, found headers: %v", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		row := ConsumptionRecord{
			District:   cell(rec, cDist),
			Province:   cell(rec, cProv),
			Crop:       cell(rec, cCrop),
			QuantityKg: coerceFloat(cell(rec, cQty), &s.Warnings.Consumption),
			ValueRwf:   coerceFloat(cell(rec, cVal), &s.Warnings.Consumption),
			Households: coerceInt(cell(rec, cHH), &s.Warnings.Consumption),
		}
		// keep only rows where at least one of quantity/value is positive
		if row.QuantityKg <= 0 && row.ValueRwf <= 0 {
			continue
		}
		s.Consumption = append(s.Consumption, row)
	}
	return nil
}

func (s *Store) loadEstablishmentXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("establishment sheet is empty")
	}
	h := newHeader(rows[0])

	cDist := h.findAny("district", "district_name")
	cProv := h.findAny("province", "province_name")
	cCode := h.findAny("isic_section_code", "section_code", "industry_section_code")
	cName := h.findAny("isic_section_name", "section_name", "industry_section")
	cWork := h.findAny("total_workers", "workers", "employees")
	cTurn := h.findAny("annual_turnover", "turnover", "annual_turnover_rwf")
	cCap := h.findAny("employed_capital", "capital", "employed_capital_rwf")
	cAgri := h.findAny("agriculture_related", "is_agriculture", "agri")
	cFoodP := h.findAny("food_processing", "food_processing_related", "is_food_processing")
	cFoodT := h.findAny("food_trade", "food_trade_related", "is_food_trade")
	cExp := h.findAny("exporter", "exporter_of_goods", "is_exporter")
	cCoop := h.findAny("cooperative", "is_cooperative", "coop")

	if cDist == -1 || cName == -1 {
		return fmt.Errorf("missing required columns, found headers: %v", rows[0])
	}

	for _, rec := range rows[1:] {
		row := EstablishmentRecord{
			District:        cell(rec, cDist),
			Province:        cell(rec, cProv),
			SectionCode:     cell(rec, cCode),
			SectionName:     cell(rec, cName),
			TotalWorkers:    coerceInt(cell(rec, cWork), &s.Warnings.Establishment),
			AnnualTurnover:  coerceFloat(cell(rec, cTurn), &s.Warnings.Establishment),
			EmployedCapital: coerceFloat(cell(rec, cCap), &s.Warnings.Establishment),
			Agriculture:     coerceBool(cell(rec, cAgri), &s.Warnings.Establishment),
			FoodProcessing:  coerceBool(cell(rec, cFoodP), &s.Warnings.Establishment),
			FoodTrade:       coerceBool(cell(rec, cFoodT), &s.Warnings.Establishment),
			Exporter:        coerceBool(cell(rec, cExp), &s.Warnings.Establishment),
			Cooperative:     coerceBool(cell(rec, cCoop), &s.Warnings.Establishment),
		}
		s.Establishments = append(s.Establishments, row)
	}
	return nil
}
