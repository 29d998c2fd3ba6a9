package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noithat-backend/internal/auth"
	"noithat-backend/internal/config"
	"noithat-backend/internal/database"
	"noithat-backend/internal/handlers"
	"noithat-backend/internal/middleware"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"
	"noithat-backend/internal/services"
	"noithat-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// =========================================================================
	// Load configuration
	// =========================================================================
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Khởi tạo Logger
	// =========================================================================
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// =========================================================================
	// Kết nối Database
	// =========================================================================
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Auto migrate trong development mode
	if cfg.App.IsDevelopment() {
		if err := database.AutoMigrate(db); err != nil {
			log.Warn("auto migrate failed", zap.Error(err))
		} else {
			log.Info("database auto migration completed")
		}
	}

	// =========================================================================
	// Khởi tạo Repositories
	// =========================================================================
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	stageRepo := repositories.NewRegistryRepository[models.PipelineStage](db)
	tierRepo := repositories.NewRegistryRepository[models.CustomerTier](db)
	statusRepo := repositories.NewRegistryRepository[models.CrmStatus](db)

	categoryRepo := repositories.NewContentRepository[models.Category](db, "")
	serviceRepo := repositories.NewContentRepository[models.ServiceOffering](db, "")
	partnerRepo := repositories.NewContentRepository[models.Partner](db, "")
	homepageRepo := repositories.NewContentRepository[models.HomepageBlock](db, "")
	aboutHeroRepo := repositories.NewContentRepository[models.AboutHero](db, "created_at ASC")
	aboutPrincipleRepo := repositories.NewContentRepository[models.AboutPrinciple](db, "")
	aboutShowcaseRepo := repositories.NewContentRepository[models.AboutShowcase](db, "")
	aboutProcessRepo := repositories.NewContentRepository[models.AboutProcessStep](db, "")
	aboutTeamRepo := repositories.NewContentRepository[models.AboutTeamMember](db, "")

	log.Info("repositories initialized")

	// =========================================================================
	// Khởi tạo Services
	// =========================================================================
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := services.NewAuthService(userRepo, jwtService, log)

	clientService := services.NewClientService(clientRepo, log)
	inquiryService := services.NewInquiryService(inquiryRepo, clientService, log)
	interactionService := services.NewInteractionService(interactionRepo, clientRepo, log)
	dealService := services.NewDealService(dealRepo, clientRepo, log)
	transactionService := services.NewTransactionService(transactionRepo, clientRepo, log)

	// Registry services dùng count từ clients để chặn xóa value đang dùng
	stageService := services.NewRegistryService(stageRepo, clientRepo.CountByStage, log, "pipeline_stage")
	tierService := services.NewRegistryService(tierRepo, clientRepo.CountByTier, log, "customer_tier")
	statusService := services.NewRegistryService(statusRepo, clientRepo.CountByStatus, log, "crm_status")

	projectService := services.NewProjectService(projectRepo, log)
	articleService := services.NewArticleService(articleRepo, log)

	categoryService := services.NewContentService(categoryRepo, log, "category")
	offeringService := services.NewContentService(serviceRepo, log, "service_offering")
	partnerService := services.NewContentService(partnerRepo, log, "partner")
	homepageService := services.NewContentService(homepageRepo, log, "homepage_block")
	aboutHeroService := services.NewContentService(aboutHeroRepo, log, "about_hero")
	aboutPrincipleService := services.NewContentService(aboutPrincipleRepo, log, "about_principle")
	aboutShowcaseService := services.NewContentService(aboutShowcaseRepo, log, "about_showcase")
	aboutProcessService := services.NewContentService(aboutProcessRepo, log, "about_process_step")
	aboutTeamService := services.NewContentService(aboutTeamRepo, log, "about_team_member")

	log.Info("services initialized")

	// =========================================================================
	// Khởi tạo Handlers
	// =========================================================================
	authHandler := handlers.NewAuthHandler(authService, log)
	clientHandler := handlers.NewClientHandler(clientService, log)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, log)
	interactionHandler := handlers.NewInteractionHandler(interactionService, log)
	dealHandler := handlers.NewDealHandler(dealService, log)
	transactionHandler := handlers.NewTransactionHandler(transactionService, log)

	stageHandler := handlers.NewRegistryHandler(stageService, log)
	tierHandler := handlers.NewRegistryHandler(tierService, log)
	statusHandler := handlers.NewRegistryHandler(statusService, log)

	projectHandler := handlers.NewProjectHandler(projectService, log)
	articleHandler := handlers.NewArticleHandler(articleService, log)

	categoryHandler := handlers.NewContentHandler(categoryService, handlers.ContentHandlerOptions[models.Category]{
		HasKind: true,
		Normalize: func(cat *models.Category) {
			if cat.Slug == "" {
				name := cat.NameVi
				if name == "" {
					name = cat.NameEn
				}
				cat.Slug = models.Slugify(name)
			}
		},
	}, log)
	offeringHandler := handlers.NewContentHandler(offeringService, handlers.ContentHandlerOptions[models.ServiceOffering]{HasActive: true}, log)
	partnerHandler := handlers.NewContentHandler(partnerService, handlers.ContentHandlerOptions[models.Partner]{HasActive: true}, log)
	homepageHandler := handlers.NewContentHandler(homepageService, handlers.ContentHandlerOptions[models.HomepageBlock]{HasActive: true}, log)
	aboutHeroHandler := handlers.NewContentHandler(aboutHeroService, handlers.ContentHandlerOptions[models.AboutHero]{}, log)
	aboutPrincipleHandler := handlers.NewContentHandler(aboutPrincipleService, handlers.ContentHandlerOptions[models.AboutPrinciple]{}, log)
	aboutShowcaseHandler := handlers.NewContentHandler(aboutShowcaseService, handlers.ContentHandlerOptions[models.AboutShowcase]{}, log)
	aboutProcessHandler := handlers.NewContentHandler(aboutProcessService, handlers.ContentHandlerOptions[models.AboutProcessStep]{}, log)
	aboutTeamHandler := handlers.NewContentHandler(aboutTeamService, handlers.ContentHandlerOptions[models.AboutTeamMember]{}, log)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	requireAdmin := middleware.RequireAdmin()

	log.Info("handlers initialized")

	// =========================================================================
	// Thiết lập Gin Router
	// =========================================================================
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	// CSRF protection: exempt login/refresh và form liên hệ công khai
	router.Use(middleware.CSRFMiddlewareWithExempt([]string{
		"/api/auth/",
		"/api/inquiries",
		"/health",
		"/metrics",
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": cfg.App.Name,
			"version": "1.0.0",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// =========================================================================
	// API Routes
	// =========================================================================
	api := router.Group("/api")
	{
		// Auth routes (login, refresh: public | me, logout: protected)
		authHandler.RegisterRoutes(api, authMiddleware)

		// Inquiry: POST công khai từ form liên hệ, còn lại cần admin
		inquiryHandler.RegisterRoutes(api, authMiddleware, requireAdmin)

		// Website content: đọc public, ghi cần đăng nhập
		projectHandler.RegisterRoutes(api, optionalAuth, authMiddleware)
		articleHandler.RegisterRoutes(api, optionalAuth, authMiddleware)
		categoryHandler.RegisterRoutes(api, "/categories", optionalAuth, authMiddleware)
		offeringHandler.RegisterRoutes(api, "/services", optionalAuth, authMiddleware)
		partnerHandler.RegisterRoutes(api, "/partners", optionalAuth, authMiddleware)
		homepageHandler.RegisterRoutes(api, "/homepage-content", optionalAuth, authMiddleware)
		aboutHeroHandler.RegisterRoutes(api, "/about-hero", optionalAuth, authMiddleware)
		aboutPrincipleHandler.RegisterRoutes(api, "/about-principles", optionalAuth, authMiddleware)
		aboutShowcaseHandler.RegisterRoutes(api, "/about-showcase", optionalAuth, authMiddleware)
		aboutProcessHandler.RegisterRoutes(api, "/about-process", optionalAuth, authMiddleware)
		aboutTeamHandler.RegisterRoutes(api, "/about-team", optionalAuth, authMiddleware)

		// =====================================================================
		// CRM routes - Require admin
		// =====================================================================
		clientHandler.RegisterRoutes(api, authMiddleware, requireAdmin)
		interactionHandler.RegisterRoutes(api, authMiddleware, requireAdmin)
		dealHandler.RegisterRoutes(api, authMiddleware, requireAdmin)
		transactionHandler.RegisterRoutes(api, authMiddleware, requireAdmin)

		stageHandler.RegisterRoutes(api, "/crm-pipeline-stages", authMiddleware, requireAdmin)
		tierHandler.RegisterRoutes(api, "/crm-customer-tiers", authMiddleware, requireAdmin)
		statusHandler.RegisterRoutes(api, "/crm-statuses", authMiddleware, requireAdmin)
	}

	log.Info("routes registered",
		zap.Strings("endpoints", []string{
			"/api/clients",
			"/api/inquiries",
			"/api/deals",
			"/api/projects",
			"/api/articles",
			"/api/crm-pipeline-stages",
		}),
	)

	// =========================================================================
	// Khởi động HTTP Server
	// =========================================================================
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// =========================================================================
	// Graceful Shutdown
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
