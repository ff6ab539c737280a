package utils

import (
	"fmt"
	"log"
	"math"
	mathrand "math/rand"
	"patientms/internal/models"
	"patientms/internal/repository"
	"sort"
	"time"
)

const DefaultNumPatients = 25

var seedCities = []string{
	"Guwahati", "Mumbai", "Delhi", "Bengaluru", "Chennai",
	"Kolkata", "Pune", "Jaipur", "Hyderabad", "Kochi",
}

// SeedPatients fills the store with generated records. Existing ids are
// never overwritten; the returned count is the number of new records.
func SeedPatients(repo repository.PatientRepository, numPatients int) (int, error) {
	if numPatients <= 0 {
		return 0, nil
	}

	records, err := repo.Load()
	if err != nil {
		return 0, fmt.Errorf("load patients: %w", err)
	}

	r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 1; created < numPatients; i++ {
		id := fmt.Sprintf("P%03d", i)
		if _, exists := records[id]; exists {
			continue
		}
		records[id] = models.NewPatientRecord(generatePatient(id, i, r))
		created++
	}

	if err := repo.Save(records); err != nil {
		return 0, fmt.Errorf("save patients: %w", err)
	}

	log.Printf("Seeded %d patients (%d total on file)", created, len(records))
	return created, nil
}

// CheckPatients re-validates every stored record and returns the ids that
// no longer pass validation.
func CheckPatients(repo repository.PatientRepository) (int, []string, error) {
	records, err := repo.Load()
	if err != nil {
		return 0, nil, fmt.Errorf("load patients: %w", err)
	}

	var invalid []string
	for id, record := range records {
		if err := models.ValidatePatient(record.ToPatient(id)); err != nil {
			invalid = append(invalid, id)
		}
	}
	sort.Strings(invalid)

	if len(invalid) > 0 {
		log.Printf("Found %d invalid records: %v", len(invalid), invalid)
	} else {
		log.Printf("All %d records pass validation", len(records))
	}

	return len(records), invalid, nil
}

// ClearPatients empties the store.
func ClearPatients(repo repository.PatientRepository) error {
	if err := repo.Save(map[string]models.PatientRecord{}); err != nil {
		return fmt.Errorf("clear patients: %w", err)
	}
	log.Println("Cleared all patient records")
	return nil
}

func generatePatient(id string, index int, r *mathrand.Rand) models.Patient {
	return models.Patient{
		ID:     id,
		Name:   fmt.Sprintf("Test Patient %d", index),
		City:   seedCities[r.Intn(len(seedCities))],
		Age:    18 + r.Intn(60),
		Gender: randomGender(r),
		Height: roundTo(1.45+r.Float64()*0.5, 2),
		Weight: roundTo(45+r.Float64()*55, 1),
	}
}

func randomGender(r *mathrand.Rand) string {
	switch r.Intn(3) {
	case 0:
		return models.GenderMale
	case 1:
		return models.GenderFemale
	default:
		return models.GenderOthers
	}
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
