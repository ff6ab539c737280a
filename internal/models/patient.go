package models

import (
	"errors"
	"math"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Gender values accepted for a patient record
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

// Verdict categories derived from BMI
const (
	VerdictUnderweight  = "Underweight"
	VerdictNormalWeight = "Normal weight"
	VerdictOverweight   = "Overweight"
	VerdictObesity      = "Obesity"
)

// Patient is the full input shape for creating a record. Height is in
// meters, weight in kilograms. The caller assigns the id.
type Patient struct {
	ID     string  `json:"id" binding:"required" example:"P001"`
	Name   string  `json:"name" binding:"required" example:"Ananya Verma"`
	City   string  `json:"city" binding:"required" example:"Guwahati"`
	Age    int     `json:"age" binding:"required,gt=0,lt=120" example:"28"`
	Gender string  `json:"gender" binding:"required,oneof=male female others" example:"female"`
	Height float64 `json:"height" binding:"required,gt=0" example:"1.72"`
	Weight float64 `json:"weight" binding:"required,gt=0" example:"60.5"`
}

// PatientUpdate is the partial update shape. Absent fields stay nil and
// leave the stored value untouched; present fields carry the same bounds
// as Patient.
type PatientUpdate struct {
	Name   *string  `json:"name,omitempty" example:"Ananya Verma"`
	City   *string  `json:"city,omitempty" example:"Mumbai"`
	Age    *int     `json:"age,omitempty" binding:"omitempty,gt=0,lt=120" example:"29"`
	Gender *string  `json:"gender,omitempty" binding:"omitempty,oneof=male female others" example:"female"`
	Height *float64 `json:"height,omitempty" binding:"omitempty,gt=0" example:"1.72"`
	Weight *float64 `json:"weight,omitempty" binding:"omitempty,gt=0" example:"62.0"`
}

// PatientRecord is the stored value: the id lives as the collection key,
// never inside the value. BMI and verdict are recomputed on every write.
type PatientRecord struct {
	Name    string  `json:"name" example:"Ananya Verma"`
	City    string  `json:"city" example:"Guwahati"`
	Age     int     `json:"age" example:"28"`
	Gender  string  `json:"gender" example:"female"`
	Height  float64 `json:"height" example:"1.72"`
	Weight  float64 `json:"weight" example:"60.5"`
	BMI     float64 `json:"bmi" example:"20.45"`
	Verdict string  `json:"verdict" example:"Normal weight"`
}

// ComputeBMI returns weight over height squared, rounded to two decimal
// places.
func ComputeBMI(weight, height float64) float64 {
	bmi := weight / (height * height)
	return math.Round(bmi*100) / 100
}

// BMIVerdict maps a BMI value to its category. The branch boundaries are
// kept exactly as published: values in [24.9, 25) fall through to Obesity.
func BMIVerdict(bmi float64) string {
	if bmi < 18.5 {
		return VerdictUnderweight
	}
	if bmi < 24.9 {
		return VerdictNormalWeight
	}
	if bmi >= 25 && bmi < 29.9 {
		return VerdictOverweight
	}
	return VerdictObesity
}

// NewPatientRecord builds the stored record from a validated patient,
// attaching the derived fields.
func NewPatientRecord(p Patient) PatientRecord {
	bmi := ComputeBMI(p.Weight, p.Height)
	return PatientRecord{
		Name:    p.Name,
		City:    p.City,
		Age:     p.Age,
		Gender:  p.Gender,
		Height:  p.Height,
		Weight:  p.Weight,
		BMI:     bmi,
		Verdict: BMIVerdict(bmi),
	}
}

// ToPatient rebuilds the full input shape for a stored record, so a merged
// update can be re-validated with the same rules as a create.
func (r PatientRecord) ToPatient(id string) Patient {
	return Patient{
		ID:     id,
		Name:   r.Name,
		City:   r.City,
		Age:    r.Age,
		Gender: r.Gender,
		Height: r.Height,
		Weight: r.Weight,
	}
}

// ApplyTo merges the supplied fields onto an existing patient.
func (u PatientUpdate) ApplyTo(p Patient) Patient {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	return p
}

// ValidatePatient runs the binding rules on a patient assembled outside
// request binding, such as the result of merging an update.
func ValidatePatient(p Patient) error {
	return binding.Validator.ValidateStruct(&p)
}

// ValidationMessages flattens a binding or validation error into
// "field: detail" strings for response bodies. Errors that are not field
// violations (malformed JSON, wrong types) come back as a single message.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + ": this field is required"
	case "gt":
		return field + ": must be greater than " + fe.Param()
	case "lt":
		return field + ": must be less than " + fe.Param()
	case "oneof":
		return field + ": must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return field + ": failed " + fe.Tag() + " validation"
	}
}
