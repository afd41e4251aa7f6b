package router

import (
	"net/http"
	"time"

	"github.com/amowaisusmani/student-management-backend/internal/config"
	"github.com/amowaisusmani/student-management-backend/internal/handler"
	"github.com/amowaisusmani/student-management-backend/internal/middleware"
	"github.com/amowaisusmani/student-management-backend/internal/response"
	"github.com/amowaisusmani/student-management-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Student    *handler.StudentHandler
	Course     *handler.CourseHandler
	Enrollment *handler.EnrollmentHandler
	Attendance *handler.AttendanceHandler
	Exam       *handler.ExamHandler
	Result     *handler.ResultHandler
	Export     *handler.ExportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth group (public login, authenticated profile).
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	// Record-keeping groups (admin JWT required).
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAdminJWT(authService))
	{
		api.GET("/students", handlers.Student.List)
		api.POST("/students", handlers.Student.Create)
		api.GET("/students/:id", handlers.Student.Get)
		api.PUT("/students/:id", handlers.Student.Update)
		api.DELETE("/students/:id", handlers.Student.Delete)

		api.GET("/courses", handlers.Course.List)
		api.POST("/courses", handlers.Course.Create)
		api.GET("/courses/:id", handlers.Course.Get)
		api.PUT("/courses/:id", handlers.Course.Update)
		api.DELETE("/courses/:id", handlers.Course.Delete)

		api.GET("/enrollments", handlers.Enrollment.List)
		api.POST("/enrollments", handlers.Enrollment.Create)
		api.DELETE("/enrollments/:id", handlers.Enrollment.Delete)

		api.GET("/attendance", handlers.Attendance.List)
		api.POST("/attendance", handlers.Attendance.Create)
		api.PUT("/attendance/:id", handlers.Attendance.Update)
		api.DELETE("/attendance/:id", handlers.Attendance.Delete)

		api.GET("/exams", handlers.Exam.List)
		api.POST("/exams", handlers.Exam.Create)
		api.GET("/exams/:id", handlers.Exam.Get)
		api.PUT("/exams/:id", handlers.Exam.Update)
		api.DELETE("/exams/:id", handlers.Exam.Delete)

		api.GET("/results", handlers.Result.List)
		api.POST("/results", handlers.Result.Create)
		api.PUT("/results/:id", handlers.Result.Update)
		api.DELETE("/results/:id", handlers.Result.Delete)

		api.GET("/export/:entity", handlers.Export.Export)
	}

	return router
}
