package controllers

import (
	"errors"
	"net/http"
	"sync"

	"patientms/internal/models"
	"patientms/internal/repository"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	repo repository.PatientRepository
	// mu serializes load-mutate-save sequences so concurrent writers
	// cannot lose updates. Read-only handlers skip it: saves are atomic
	// renames, so loads never see partial writes.
	mu sync.Mutex
}

func NewPatientController(repo repository.PatientRepository) *PatientController {
	return &PatientController{repo: repo}
}

// CreatePatient godoc
// @Summary Create a patient record
// @Description Register a new patient under a caller-assigned id; BMI and verdict are computed from height and weight
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.Patient true "Patient data"
// @Success 201 {object} map[string]interface{} "Patient created successfully"
// @Failure 400 {object} map[string]interface{} "Patient already exists"
// @Failure 422 {object} map[string]interface{} "Invalid patient data"
// @Failure 500 {object} map[string]interface{} "Patient storage unavailable"
// @Router /create [post]
func (pc *PatientController) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Invalid patient data",
			"errors":  models.ValidationMessages(err),
		})
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	records, err := pc.repo.Load()
	if err != nil {
		pc.storageError(c, err)
		return
	}

	if _, exists := records[patient.ID]; exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Patient Already Exists",
			"error":   "a patient with id " + patient.ID + " is already registered",
		})
		return
	}

	records[patient.ID] = models.NewPatientRecord(patient)
	if err := pc.repo.Save(records); err != nil {
		pc.storageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Patient created successfully",
		"patient_id": patient.ID,
	})
}

// UpdatePatient godoc
// @Summary Update a patient record
// @Description Merge the supplied fields onto an existing patient and recompute BMI and verdict
// @Tags patients
// @Accept json
// @Produce json
// @Param patient_id path string true "Patient ID"
// @Param patient body models.PatientUpdate true "Fields to update"
// @Success 201 {object} map[string]interface{} "Patient updated successfully"
// @Failure 400 {object} map[string]interface{} "Patient does not exist"
// @Failure 422 {object} map[string]interface{} "Invalid patient data"
// @Failure 500 {object} map[string]interface{} "Patient storage unavailable"
// @Router /update/{patient_id} [put]
func (pc *PatientController) UpdatePatient(c *gin.Context) {
	patientID := c.Param("patient_id")

	var update models.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Invalid patient data",
			"errors":  models.ValidationMessages(err),
		})
		return
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	records, err := pc.repo.Load()
	if err != nil {
		pc.storageError(c, err)
		return
	}

	existing, ok := records[patientID]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Patient Does Not Exists",
			"error":   "no patient with id " + patientID,
		})
		return
	}

	// Merge onto the stored record, then re-validate the result with the
	// same rules as a create before anything is persisted.
	merged := update.ApplyTo(existing.ToPatient(patientID))
	if err := models.ValidatePatient(merged); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Invalid patient data",
			"errors":  models.ValidationMessages(err),
		})
		return
	}

	records[patientID] = models.NewPatientRecord(merged)
	if err := pc.repo.Save(records); err != nil {
		pc.storageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Patient updated successfully",
		"patient_id": patientID,
	})
}

// DeletePatient godoc
// @Summary Delete a patient record
// @Description Remove a patient from the collection
// @Tags patients
// @Produce json
// @Param patient_id path string true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient deleted successfully"
// @Failure 400 {object} map[string]interface{} "Patient does not exist"
// @Failure 500 {object} map[string]interface{} "Patient storage unavailable"
// @Router /delete/{patient_id} [delete]
func (pc *PatientController) DeletePatient(c *gin.Context) {
	patientID := c.Param("patient_id")

	pc.mu.Lock()
	defer pc.mu.Unlock()

	records, err := pc.repo.Load()
	if err != nil {
		pc.storageError(c, err)
		return
	}

	if _, ok := records[patientID]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Patient Does Not Exists",
			"error":   "no patient with id " + patientID,
		})
		return
	}

	delete(records, patientID)
	if err := pc.repo.Save(records); err != nil {
		pc.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Patient deleted successfully",
		"patient_id": patientID,
	})
}

// GetPatient godoc
// @Summary Get a patient record
// @Description Retrieve a single patient by id, including the derived BMI and verdict
// @Tags patients
// @Produce json
// @Param patient_id path string true "Patient ID"
// @Success 200 {object} models.PatientRecord "Patient record"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Patient storage unavailable"
// @Router /patient/{patient_id} [get]
func (pc *PatientController) GetPatient(c *gin.Context) {
	patientID := c.Param("patient_id")

	records, err := pc.repo.Load()
	if err != nil {
		pc.storageError(c, err)
		return
	}

	record, ok := records[patientID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Patient not found",
			"error":   "no patient with id " + patientID,
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ViewPatients godoc
// @Summary View all patient records
// @Description Retrieve the entire collection as a mapping of patient id to record
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]models.PatientRecord "All patient records"
// @Failure 500 {object} map[string]interface{} "Patient storage unavailable"
// @Router /view [get]
func (pc *PatientController) ViewPatients(c *gin.Context) {
	records, err := pc.repo.Load()
	if err != nil {
		pc.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// SortPatients godoc
// @Summary Sort patient records
// @Description List record values sorted by height, weight, bmi or age, ascending or descending
// @Tags patients
// @Produce json
// @Param sort_by query string true "Field to sort by" Enums(height, weight, bmi, age)
// @Param order query string false "Sort order" Enums(asc, dsc) default(asc)
// @Success 200 {array} models.PatientRecord "Sorted patient records"
// @Failure 400 {object} map[string]interface{} "Invalid sort parameters"
// @Failure 500 {object} map[string]interface{} "Patient storage unavailable"
// @Router /sort [get]
func (pc *PatientController) SortPatients(c *gin.Context) {
	sortBy := c.Query("sort_by")
	order := c.DefaultQuery("order", models.SortOrderAsc)

	// Params are checked before storage is touched.
	if err := models.ValidateSortParams(sortBy, order); err != nil {
		pc.sortParamError(c, err)
		return
	}

	records, err := pc.repo.Load()
	if err != nil {
		pc.storageError(c, err)
		return
	}

	sorted, err := models.SortPatients(records, sortBy, order)
	if err != nil {
		pc.sortParamError(c, err)
		return
	}

	c.JSON(http.StatusOK, sorted)
}

func (pc *PatientController) sortParamError(c *gin.Context, err error) {
	message := "Invalid sort field. Choose from height, weight, bmi or age"
	if errors.Is(err, models.ErrInvalidSortOrder) {
		message = "Invalid order. Choose 'asc' or 'dsc'"
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}

// storageError reports a 500 without leaking filesystem detail; the wrapped
// error goes to the request logger via the gin error list.
func (pc *PatientController) storageError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Patient storage unavailable",
		"error":   "could not access the patient data file",
	})
}
