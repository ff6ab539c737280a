package controllers_test

import (
	"patientms/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPatientRepository is a testify mock over the repository boundary.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Load() (map[string]models.PatientRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.PatientRecord), args.Error(1)
}

func (m *MockPatientRepository) Save(records map[string]models.PatientRecord) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockPatientRepository) Init() error {
	args := m.Called()
	return args.Error(0)
}
