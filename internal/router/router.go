package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dnevnik/dnevnik-backend/internal/config"
	"github.com/dnevnik/dnevnik-backend/internal/handler"
	"github.com/dnevnik/dnevnik-backend/internal/middleware"
	"github.com/dnevnik/dnevnik-backend/internal/response"
	"github.com/dnevnik/dnevnik-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Class      *handler.ClassHandler
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	Statistics *handler.StatisticsHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Auth Group (Public) ────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Authenticated Group (JWT) ──────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(authService))
	{
		// Profile
		api.PATCH("/profile/credentials", handlers.User.UpdateOwnCredentials)

		// Account management (admin only)
		api.GET("/users", middleware.RequireAdmin(), handlers.User.ListUsers)
		api.POST("/users", middleware.RequireAdmin(), handlers.User.RegisterTeacher)
		api.PATCH("/users/:id/credentials", middleware.RequireAdmin(), handlers.User.UpdateCredentials)
		api.PATCH("/users/:id/role", middleware.RequireAdmin(), handlers.User.UpdateRole)

		// Class registry
		api.GET("/classes", handlers.Class.ListClasses)
		api.POST("/classes", middleware.RequireAdmin(), handlers.Class.CreateClass)

		// Student registry (ownership enforced in the service guard)
		api.GET("/classes/:classId/students", handlers.Student.ListStudents)
		api.POST("/classes/:classId/students", handlers.Student.AddStudent)
		api.PATCH("/students/:id", handlers.Student.UpdateStudent)

		// Attendance register
		api.GET("/attendance", handlers.Attendance.GetAttendance)
		api.PUT("/attendance", handlers.Attendance.SaveAttendance)

		// Weekly statistics
		api.GET("/statistics/weekly", handlers.Statistics.GetWeekly)
	}

	return router
}
