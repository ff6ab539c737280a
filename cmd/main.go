package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patientms/docs"
	"patientms/internal/controllers"
	"patientms/internal/metrics"
	"patientms/internal/middleware"
	"patientms/internal/repository"
	"patientms/routes"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	env := getenv("ENV", "production")
	logger := newLogger(env)
	if envErr != nil {
		logger.Warn().Msg("no .env file found, using environment defaults")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Patient Management System API"
	docs.SwaggerInfo.Description = "A fully functional API to manage your patient records"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Initialize the patient store
	dataFile := getenv("PATIENTS_FILE", "patients.json")
	repo := repository.NewFileRepository(dataFile)
	if err := repo.Init(); err != nil {
		logger.Fatal().Err(err).Str("file", dataFile).Msg("failed to initialize patient storage")
	}
	logger.Info().Str("file", dataFile).Msg("patient storage ready")

	// Initialize controllers
	patientController := controllers.NewPatientController(repo)
	metaController := controllers.NewMetaController()

	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Collect())

	routes.RegisterMetaRoutes(router, metaController)
	routes.RegisterPatientRoutes(router, patientController)
	routes.RegisterSwaggerRoutes(router)

	// Start the server
	port := getenv("PORT", "8080")

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting server")
		logger.Info().Msgf("API documentation: http://localhost:%s/swagger/index.html", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
