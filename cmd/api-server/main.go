package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/novazone/learnhub-api/api/swagger"
	"github.com/novazone/learnhub-api/internal/handler"
	"github.com/novazone/learnhub-api/internal/middleware"
	"github.com/novazone/learnhub-api/internal/repository"
	"github.com/novazone/learnhub-api/internal/router"
	"github.com/novazone/learnhub-api/internal/service"
	"github.com/novazone/learnhub-api/pkg/cache"
	"github.com/novazone/learnhub-api/pkg/config"
	"github.com/novazone/learnhub-api/pkg/database"
	"github.com/novazone/learnhub-api/pkg/jobs"
	"github.com/novazone/learnhub-api/pkg/logger"
	corsmiddleware "github.com/novazone/learnhub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/novazone/learnhub-api/pkg/middleware/requestid"
	"github.com/novazone/learnhub-api/pkg/storage"
)

// @title LearnHub API
// @version 1.0.0
// @description Backend for the LearnHub educational platform
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	userRepo := repository.NewUserRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	postRepo := repository.NewPostRepository(db)
	fileRepo := repository.NewFileRepository(db)

	insightSvc := service.NewInsightService()
	authSvc := service.NewAuthService(userRepo, teacherRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	courseSvc := service.NewCourseService(courseRepo, progressRepo, cacheSvc, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, insightSvc, validate, logr)
	progressSvc := service.NewProgressService(progressRepo, insightSvc, logr)
	quizSvc := service.NewQuizService(quizRepo, insightSvc, validate, logr)
	communitySvc := service.NewCommunityService(postRepo, validate, logr)
	fileSvc := service.NewFileService(fileRepo, cfg.Uploads.MaxFileSizeBytes, logr)
	seedSvc := service.NewSeedService(courseRepo, teacherRepo, postRepo, logr)

	dashboardSvc := service.NewDashboardService(courseRepo, progressRepo, postRepo, insightSvc, cacheSvc, service.DashboardConfig{
		CacheEnabled: cfg.Dashboard.CacheEnabled && cacheSvc != nil,
		CacheTTL:     cfg.Dashboard.CacheTTL,
	}, logr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reportHandler *handler.ReportHandler
	if cfg.Reports.Enabled {
		reportRepo := repository.NewReportRepository(db)
		store, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init report storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Reports.SignedURLSecret, cfg.Reports.SignedURLTTL)
		exportSvc := service.NewExportService(courseRepo, progressRepo, store, signer, service.ExportConfig{
			APIPrefix: cfg.APIPrefix,
			ResultTTL: cfg.Reports.SignedURLTTL,
		}, logr, nil, nil)

		worker := service.NewReportWorker(reportRepo, exportSvc, metricsSvc, cfg.Reports.WorkerRetries, logr)
		queue := jobs.NewQueue("reports", worker.Handle, jobs.QueueConfig{
			Workers:    cfg.Reports.WorkerConcurrency,
			MaxRetries: cfg.Reports.WorkerRetries,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()

		reportSvc := service.NewReportService(reportRepo, queue, exportSvc, validate, logr, service.ReportServiceConfig{
			ResultTTL:       cfg.Reports.SignedURLTTL,
			CleanupInterval: cfg.Reports.CleanupInterval,
			MaxRetries:      cfg.Reports.WorkerRetries,
		})
		reportSvc.RecoverPendingJobs(ctx)
		reportSvc.StartCleanup(ctx)
		reportHandler = handler.NewReportHandler(reportSvc)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	router.Register(r, cfg, authSvc, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Course:    handler.NewCourseHandler(courseSvc),
		Teacher:   handler.NewTeacherHandler(teacherSvc),
		Progress:  handler.NewProgressHandler(progressSvc),
		Quiz:      handler.NewQuizHandler(quizSvc),
		Community: handler.NewCommunityHandler(communitySvc),
		File:      handler.NewFileHandler(fileSvc),
		Seed:      handler.NewSeedHandler(seedSvc),
		Report:    reportHandler,
		Metrics:   handler.NewMetricsHandler(metricsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
