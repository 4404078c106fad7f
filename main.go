package main

import (
	"contesthub/config"
	"contesthub/handlers"
	"contesthub/middleware"
	"contesthub/models"
	"contesthub/routes"
	"contesthub/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.McqQuestion{},
		&models.McqOption{},
		&models.McqSubmission{},
		&models.DsaProblem{},
		&models.TestCase{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	contestService := services.NewContestService(db)
	leaderboardService := services.NewLeaderboardService(redisClient)
	submissionService := services.NewSubmissionService(db, leaderboardService)
	problemService := services.NewProblemService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contestHandler := handlers.NewContestHandler(contestService, submissionService, leaderboardService)
	problemHandler := handlers.NewProblemHandler(problemService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, contestHandler, problemHandler, cfg.JWTSecret)

	// Start server
	log.Infof("server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
