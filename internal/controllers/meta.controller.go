package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetaController serves the informational endpoints around the patient API.
type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// Home godoc
// @Summary Service greeting
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Greeting"
// @Router / [get]
func (mc *MetaController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Patient Management System",
	})
}

// About godoc
// @Summary Service description
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Description"
// @Router /about [get]
func (mc *MetaController) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": "A fully functional API to manage your patient records",
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /healthz [get]
func (mc *MetaController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
