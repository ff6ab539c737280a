package utils_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"patientms/internal/models"
	"patientms/internal/repository"
	"patientms/internal/utils"

	"github.com/stretchr/testify/assert"
)

func newTestRepository(t *testing.T) repository.PatientRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.json")
	repo := repository.NewFileRepository(path)
	assert.NoError(t, repo.Init())
	return repo
}

func TestSeedPatientsCreatesValidRecords(t *testing.T) {
	repo := newTestRepository(t)

	created, err := utils.SeedPatients(repo, 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, created)

	records, err := repo.Load()
	assert.NoError(t, err)
	assert.Len(t, records, 10)

	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("P%03d", i)
		record, ok := records[id]
		assert.True(t, ok, "expected record %s", id)
		assert.NoError(t, models.ValidatePatient(record.ToPatient(id)))
		assert.Equal(t, models.ComputeBMI(record.Weight, record.Height), record.BMI)
		assert.Equal(t, models.BMIVerdict(record.BMI), record.Verdict)
	}
}

func TestSeedPatientsSkipsExistingIDs(t *testing.T) {
	repo := newTestRepository(t)

	existing := models.NewPatientRecord(models.Patient{
		ID:     "P001",
		Name:   "Existing Patient",
		City:   "Guwahati",
		Age:    40,
		Gender: "female",
		Height: 1.68,
		Weight: 58,
	})
	assert.NoError(t, repo.Save(map[string]models.PatientRecord{"P001": existing}))

	created, err := utils.SeedPatients(repo, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, created)

	records, err := repo.Load()
	assert.NoError(t, err)
	assert.Len(t, records, 4)
	assert.Equal(t, existing, records["P001"])
	for _, id := range []string{"P002", "P003", "P004"} {
		assert.Contains(t, records, id)
	}
}

func TestSeedPatientsZeroCount(t *testing.T) {
	repo := newTestRepository(t)

	created, err := utils.SeedPatients(repo, 0)
	assert.NoError(t, err)
	assert.Zero(t, created)

	records, err := repo.Load()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestCheckPatientsFlagsInvalidRecords(t *testing.T) {
	repo := newTestRepository(t)

	valid := models.NewPatientRecord(models.Patient{
		ID:     "P001",
		Name:   "Ananya Verma",
		City:   "Guwahati",
		Age:    28,
		Gender: "female",
		Height: 1.72,
		Weight: 60.5,
	})
	broken := models.PatientRecord{
		City:   "Delhi",
		Age:    200,
		Gender: "robot",
		Weight: 70,
	}
	assert.NoError(t, repo.Save(map[string]models.PatientRecord{
		"P001": valid,
		"BAD1": broken,
	}))

	total, invalid, err := utils.CheckPatients(repo)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"BAD1"}, invalid)
}

func TestCheckPatientsAllValid(t *testing.T) {
	repo := newTestRepository(t)

	_, err := utils.SeedPatients(repo, 5)
	assert.NoError(t, err)

	total, invalid, err := utils.CheckPatients(repo)
	assert.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, invalid)
}

func TestClearPatients(t *testing.T) {
	repo := newTestRepository(t)

	_, err := utils.SeedPatients(repo, 5)
	assert.NoError(t, err)

	assert.NoError(t, utils.ClearPatients(repo))

	records, err := repo.Load()
	assert.NoError(t, err)
	assert.Empty(t, records)
}
