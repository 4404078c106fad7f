package routes

import (
	"net/http"

	"contesthub/handlers"
	"contesthub/middleware"
	"contesthub/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	contestHandler *handlers.ContestHandler,
	problemHandler *handlers.ProblemHandler,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// User profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Contest routes
			contests := protected.Group("/contests")
			{
				contests.POST("", middleware.RequireRoles(models.RoleCreator), contestHandler.CreateContest)
				contests.GET("/:id", contestHandler.GetContest)
				contests.GET("/:id/leaderboard", contestHandler.GetLeaderboard)
				contests.POST("/:id/mcq", middleware.RequireRoles(models.RoleCreator), contestHandler.CreateMcq)
				contests.POST("/:id/mcq/:mcqId/submit", middleware.RequireRoles(models.RoleContestee), contestHandler.SubmitMcq)
				contests.POST("/:id/dsa", middleware.RequireRoles(models.RoleCreator), contestHandler.CreateDsaProblem)
			}

			// Problem routes
			problems := protected.Group("/problems")
			{
				problems.GET("/:problemId", problemHandler.GetProblem)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
