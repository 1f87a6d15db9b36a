package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/AliAzlanAziz/fyp-portal-api/api/swagger"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/handler"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/middleware"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/repository"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/cache"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/config"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/database"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/export"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/logger"
	corsmiddleware "github.com/AliAzlanAziz/fyp-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/AliAzlanAziz/fyp-portal-api/pkg/middleware/requestid"
)

// @title FYP Portal API
// @version 1.0.0
// @description Final year project supervision portal
// @BasePath /
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Directory.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, directory cache disabled", "error", err)
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	contractRepo := repository.NewContractRepository(db)
	panelRepo := repository.NewPanelRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close()

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	contractSvc := service.NewContractService(contractRepo, panelRepo, userRepo, service.ContractPolicy{
		AdvisorCapacity: cfg.Contract.AdvisorCapacity,
		MarksMin:        cfg.Contract.MarksMin,
		AdvisorMarksMax: cfg.Contract.AdvisorMarksMax,
		MidMarksMax:     cfg.Contract.MidMarksMax,
		FinalMarksMax:   cfg.Contract.FinalMarksMax,
	}, validate, logr)
	panelSvc := service.NewPanelService(panelRepo, userRepo, contractRepo, validate, logr)

	var directorySvc *service.DirectoryService
	if redisClient != nil {
		directorySvc = service.NewDirectoryService(userRepo, cacheRepo, cfg.Directory.CacheTTL, logr)
	} else {
		directorySvc = service.NewDirectoryService(userRepo, nil, cfg.Directory.CacheTTL, logr)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(contractSvc, directorySvc, metricsSvc)
	advisorHandler := handler.NewAdvisorHandler(contractSvc, export.NewPDFExporter(), metricsSvc)
	adminHandler := handler.NewAdminHandler(directorySvc, contractSvc, panelSvc, metricsSvc)
	panelHandler := handler.NewPanelHandler(contractSvc, panelSvc, metricsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := middleware.JWT(authSvc)

	admin := r.Group("/admin")
	{
		admin.POST("/signup", authHandler.Signup(models.RoleAdmin))
		admin.POST("/signin", authHandler.Signin(models.RoleAdmin))

		protected := admin.Group("", auth, middleware.RequireRoles(models.RoleAdmin))
		protected.GET("/advisors", adminHandler.Advisors)
		protected.GET("/students", adminHandler.Students)
		protected.GET("/advisor/:id", adminHandler.AdvisorDetail)
		protected.GET("/student/request/:regId", adminHandler.StudentRequest)
		protected.POST("/panel", adminHandler.CreatePanel)
		protected.GET("/panels", adminHandler.Panels)
		protected.GET("/panel/:id", adminHandler.PanelDetail)
		protected.GET("/panel/:id/contracts", adminHandler.PanelContracts)
		protected.POST("/panel/:id/close", adminHandler.ClosePanel)
		protected.GET("/panel/staff/available", adminHandler.AvailableStaff)
	}

	advisor := r.Group("/advisor")
	{
		advisor.POST("/signup", authHandler.Signup(models.RoleAdvisor))
		advisor.POST("/signin", authHandler.Signin(models.RoleAdvisor))

		protected := advisor.Group("", auth, middleware.RequireRoles(models.RoleAdvisor))
		protected.POST("/accept/request/:id", advisorHandler.Accept)
		protected.POST("/reject/request/:id", advisorHandler.Reject)
		protected.POST("/close/request/:id", advisorHandler.Close)
		protected.GET("/requests", advisorHandler.Requests)
		protected.GET("/request/:id", advisorHandler.RequestDetail)
		protected.GET("/contract/form/:id", advisorHandler.Form)
		protected.POST("/contract/form/:id", advisorHandler.SubmitForm)
		protected.POST("/contract/marks/:id", advisorHandler.SubmitMarks)
		protected.GET("/contract/sheet/:id", advisorHandler.ExportSheet)
	}

	student := r.Group("/student")
	{
		student.POST("/signup", authHandler.Signup(models.RoleStudent))
		student.POST("/signin", authHandler.Signin(models.RoleStudent))

		protected := student.Group("", auth, middleware.RequireRoles(models.RoleStudent))
		protected.GET("/advisors", studentHandler.Advisors)
		protected.POST("/request/advisor", studentHandler.RequestAdvisor)
		protected.POST("/close/request/:id", studentHandler.CloseRequest)
		protected.GET("/requests", studentHandler.Requests)
		protected.GET("/request/:id", studentHandler.RequestDetail)
	}

	panel := r.Group("/panel")
	{
		panel.POST("/signup", authHandler.Signup(models.RolePanel))
		panel.POST("/signin", authHandler.Signin(models.RolePanel))

		protected := panel.Group("", auth, middleware.RequireRoles(models.RolePanel))
		protected.GET("/contracts", panelHandler.AssignedContracts)
		protected.POST("/contract/marks/:id", panelHandler.SubmitMarks)
	}

	r.GET("/me", auth, authHandler.Me)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
