package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/novazone/learnhub-api/internal/handler"
	"github.com/novazone/learnhub-api/internal/middleware"
	"github.com/novazone/learnhub-api/internal/models"
	"github.com/novazone/learnhub-api/pkg/config"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Course    *handler.CourseHandler
	Teacher   *handler.TeacherHandler
	Progress  *handler.ProgressHandler
	Quiz      *handler.QuizHandler
	Community *handler.CommunityHandler
	File      *handler.FileHandler
	Seed      *handler.SeedHandler
	Report    *handler.ReportHandler
	Metrics   *handler.MetricsHandler
}

// Register mounts all routes on the engine. The dashboard and progress read
// endpoints are deliberately open; everything that writes on behalf of a user
// requires a bearer token.
func Register(r *gin.Engine, cfg *config.Config, auth middleware.TokenValidator, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", middleware.JWT(auth), h.Auth.Me)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/student/:id", h.Dashboard.Student)
		dashboard.GET("/teacher/:id", h.Dashboard.Teacher)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", h.Course.List)
		courses.POST("", middleware.JWT(auth), middleware.RequireRoles(models.RoleTeacher), h.Course.Create)
		courses.POST("/:id/enroll", middleware.JWT(auth), middleware.RequireRoles(models.RoleStudent), h.Course.Enroll)
	}

	teachers := api.Group("/teachers")
	{
		teachers.GET("", h.Teacher.List)
		teachers.GET("/recommendations/:subject", middleware.JWT(auth), h.Teacher.Recommendations)
		teachers.PUT("/profile", middleware.JWT(auth), middleware.RequireRoles(models.RoleTeacher), h.Teacher.UpdateProfile)
	}

	progress := api.Group("/progress")
	{
		progress.GET("/:id", h.Progress.Overview)
		progress.PUT("/:id", h.Progress.Update)
	}

	quiz := api.Group("/quiz")
	{
		quiz.GET("/:courseId", h.Quiz.GetForCourse)
		quiz.POST("/submit", middleware.JWT(auth), h.Quiz.Submit)
	}

	community := api.Group("/community")
	{
		community.GET("/posts", h.Community.List)
		community.POST("/posts", middleware.JWT(auth), h.Community.Create)
	}

	api.POST("/upload", h.File.Upload)
	api.GET("/files/:id", h.File.Get)

	api.POST("/seed-data", h.Seed.Seed)

	if cfg.Reports.Enabled && h.Report != nil {
		reports := api.Group("/reports")
		{
			reports.GET("/download", h.Report.Download)
			reports.POST("", middleware.JWT(auth), middleware.RequireRoles(models.RoleTeacher), h.Report.Create)
			reports.GET("/:id", middleware.JWT(auth), h.Report.Status)
		}
	}
}
