package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"patientms/internal/models"
)

// PatientRepository is the persistence boundary for the patient collection.
// Load returns the whole collection and Save rewrites it in full; there are
// no partial reads or writes.
type PatientRepository interface {
	Load() (map[string]models.PatientRecord, error)
	Save(records map[string]models.PatientRecord) error
	Init() error
}

type fileRepository struct {
	path string
}

// NewFileRepository returns a repository backed by a single JSON file.
// Top-level keys are patient ids, values are the stored records.
func NewFileRepository(path string) PatientRepository {
	return &fileRepository{path: path}
}

// Init creates the data file holding an empty collection if it does not
// exist yet. Load never creates the file: a missing file at request time
// stays an error.
func (r *fileRepository) Init() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat patients file: %w", err)
	}
	return r.write(map[string]models.PatientRecord{})
}

func (r *fileRepository) Load() (map[string]models.PatientRecord, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read patients file: %w", err)
	}

	records := make(map[string]models.PatientRecord)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse patients file: %w", err)
	}
	return records, nil
}

func (r *fileRepository) Save(records map[string]models.PatientRecord) error {
	return r.write(records)
}

// write replaces the file atomically: encode, write a temp file next to the
// target, fsync, rename into place. Concurrent loaders never observe a
// partial write.
func (r *fileRepository) write(records map[string]models.PatientRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode patients file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp patients file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp patients file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp patients file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp patients file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace patients file: %w", err)
	}
	return nil
}
