package models

import (
	"errors"
	"sort"
)

// Sort orders accepted by the sort endpoint
const (
	SortOrderAsc = "asc"
	SortOrderDsc = "dsc"
)

var (
	ErrInvalidSortField = errors.New("sort field must be one of height, weight, bmi or age")
	ErrInvalidSortOrder = errors.New("sort order must be asc or dsc")
)

var sortKeys = map[string]func(PatientRecord) float64{
	"height": func(r PatientRecord) float64 { return r.Height },
	"weight": func(r PatientRecord) float64 { return r.Weight },
	"bmi":    func(r PatientRecord) float64 { return r.BMI },
	"age":    func(r PatientRecord) float64 { return float64(r.Age) },
}

// ValidateSortParams checks the field and order against their allowlists.
func ValidateSortParams(sortBy, order string) error {
	if _, ok := sortKeys[sortBy]; !ok {
		return ErrInvalidSortField
	}
	if order != SortOrderAsc && order != SortOrderDsc {
		return ErrInvalidSortOrder
	}
	return nil
}

// SortPatients returns the record values ordered by the given field.
// Records are enumerated in id order before the stable ascending sort, so
// equal keys come out deterministically. Descending is the exact reverse of
// the ascending result, not an independent re-sort.
func SortPatients(records map[string]PatientRecord, sortBy, order string) ([]PatientRecord, error) {
	if err := ValidateSortParams(sortBy, order); err != nil {
		return nil, err
	}
	key := sortKeys[sortBy]

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sorted := make([]PatientRecord, 0, len(records))
	for _, id := range ids {
		sorted = append(sorted, records[id])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})

	if order == SortOrderDsc {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted, nil
}
