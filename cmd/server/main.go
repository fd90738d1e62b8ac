package main

import (
	"fmt"
	"net/http"

	"tripmind/internal/config"
	"tripmind/internal/handlers"
	"tripmind/internal/middleware"
	"tripmind/internal/planner"
	"tripmind/internal/repositories/mongodb"
	"tripmind/internal/services"
	"tripmind/pkg/database"
	"tripmind/pkg/logger"
	"tripmind/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Single store handle, created once and shared by all repositories
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	router := buildRouter(cfg, log, db)

	port := fmt.Sprintf("%d", cfg.App.Port)
	log.Infof("Starting %s on port %s", cfg.App.Name, port)
	log.Fatalf("%v", http.ListenAndServe(":"+port, router))
}

func buildRouter(cfg *config.Config, log *logger.Logger, db *database.MongoDB) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tripRepo := mongodb.NewTripRepository(db.Database)
	preferenceRepo := mongodb.NewPreferenceRepository(db.Database)

	plannerService := services.NewPlannerService(planner.New(), log)
	tripService := services.NewTripService(tripRepo, log)
	preferenceService := services.NewPreferenceService(preferenceRepo, log)

	plannerHandler := handlers.NewPlannerHandler(plannerService)
	tripHandler := handlers.NewTripHandler(tripService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	// API routes
	api := router.Group("/api")
	{
		routes.SetupAPIRoutes(api, plannerHandler, tripHandler, preferenceHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	return router
}
