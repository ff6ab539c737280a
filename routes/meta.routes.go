package routes

import (
	"patientms/internal/controllers"
	"patientms/internal/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterMetaRoutes(router *gin.Engine, metaController *controllers.MetaController) {
	router.GET("/", metaController.Home)
	router.GET("/about", metaController.About)
	router.GET("/healthz", metaController.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
