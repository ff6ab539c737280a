package routes

import (
	"patientms/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPatientRoutes(router *gin.Engine, patientController *controllers.PatientController) {
	router.POST("/create", patientController.CreatePatient)
	router.PUT("/update/:patient_id", patientController.UpdatePatient)
	router.DELETE("/delete/:patient_id", patientController.DeletePatient)
	router.GET("/view", patientController.ViewPatients)
	router.GET("/patient/:patient_id", patientController.GetPatient)
	router.GET("/sort", patientController.SortPatients)
}
