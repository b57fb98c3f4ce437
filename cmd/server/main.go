package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	contentapp "github.com/evergreen/backend/internal/application/content"
	dashboardapp "github.com/evergreen/backend/internal/application/dashboard"
	engagementapp "github.com/evergreen/backend/internal/application/engagement"
	identityapp "github.com/evergreen/backend/internal/application/identity"
	inquiryapp "github.com/evergreen/backend/internal/application/inquiry"
	listingapp "github.com/evergreen/backend/internal/application/listing"
	"github.com/evergreen/backend/internal/domain/content"
	"github.com/evergreen/backend/internal/infrastructure/auth"
	"github.com/evergreen/backend/internal/infrastructure/cache"
	"github.com/evergreen/backend/internal/infrastructure/config"
	"github.com/evergreen/backend/internal/infrastructure/logger"
	"github.com/evergreen/backend/internal/infrastructure/persistence"
	"github.com/evergreen/backend/internal/infrastructure/storage"
	"github.com/evergreen/backend/internal/infrastructure/telemetry"
	"github.com/evergreen/backend/internal/interfaces/http/handler"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
	"github.com/evergreen/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/evergreen/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			EverGreen Backend API
//	@version		1.0
//	@description	Real estate marketplace backend API for property listings, inquiries, and site content.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/evergreen/backend
//	@contact.email	support@evergreen.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting EverGreen Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Mirror log entries to the OTEL collector when configured. The
	// bridged logger replaces log so every later component inherits it.
	logsProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogExportEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Warn("Failed to initialize log export, continuing without it", zap.Error(err))
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := logsProvider.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down log export", zap.Error(err))
			}
		}()
		log = telemetry.BridgeLogger(log, logsProvider, cfg.Telemetry.ServiceName, zapcore.InfoLevel)
	}

	// Continuous profiling ships CPU and memory profiles to Pyroscope
	if cfg.Telemetry.Enabled && cfg.Telemetry.ProfilingEnabled {
		profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
			Enabled:         true,
			ServerAddress:   cfg.Telemetry.ProfilerAddress,
			ApplicationName: cfg.Telemetry.ServiceName,
		}, log)
		if err != nil {
			log.Warn("Failed to start profiler, continuing without it", zap.Error(err))
		} else {
			defer func() {
				if err := profiler.Stop(); err != nil {
					log.Error("Error stopping profiler", zap.Error(err))
				}
			}()
		}
	}

	// Initialize tracing before anything that records spans
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DefaultDBTracingConfig(), log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Initialize repositories
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	adminUserRepo := persistence.NewGormAdminUserRepository(db.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(db.DB)
	inquiryRepo := persistence.NewGormInquiryRepository(db.DB)
	blogRepo := persistence.NewGormBlogPostRepository(db.DB)
	testimonialRepo := persistence.NewGormTestimonialRepository(db.DB)
	faqRepo := persistence.NewGormFAQRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	mediaRepo := persistence.NewGormMediaRepository(db.DB)
	heroRepo := persistence.NewGormHeroRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	// Site settings are read on nearly every page render, so they go
	// through a cache. Redis when configured, process-local otherwise.
	var settingCache cache.SettingCache
	if cfg.Redis.Host != "" {
		redisSettingCache, err := cache.NewRedisSettingCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cache.WithSettingLogger(log))
		if err != nil {
			log.Fatal("Failed to connect to Redis for settings cache", zap.Error(err))
		}
		settingCache = redisSettingCache
	} else {
		log.Warn("Redis not configured, using in-memory settings cache")
		settingCache = cache.NewInMemorySettingCache()
	}
	defer func() {
		if err := settingCache.Close(); err != nil {
			log.Error("Error closing settings cache", zap.Error(err))
		}
	}()
	var cachedSettingRepo content.SettingRepository = cache.NewCachedSettingRepository(settingRepo, settingCache, log)

	// Initialize JWT service and token blacklist
	jwtService := auth.NewJWTService(cfg.JWT)

	var tokenBlacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis for token blacklist", zap.Error(err))
		}
		tokenBlacklist = redisBlacklist
	} else {
		log.Warn("Redis not configured, using in-memory token blacklist. Logout will not survive restarts.")
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	}

	// Initialize object storage for the media library
	var objectStorage contentapp.ObjectStorageService
	switch cfg.Storage.Provider {
	case "s3":
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize S3 object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage initialized",
			zap.String("provider", "s3"),
			zap.String("bucket", cfg.Storage.Bucket),
		)
	default:
		log.Warn("Using stub object storage, uploads will not be persisted")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Initialize application services
	authService := identityapp.NewAuthService(
		userRepo,
		adminUserRepo,
		jwtService,
		tokenBlacklist,
		identityapp.DefaultAuthServiceConfig(),
		log,
	)
	userService := identityapp.NewUserService(userRepo, adminUserRepo)
	userService.SetTokenBlacklist(tokenBlacklist, jwtService.GetRefreshTokenExpiration())
	propertyService := listingapp.NewPropertyService(propertyRepo)
	favoriteService := engagementapp.NewFavoriteService(favoriteRepo, propertyRepo)
	inquiryService := inquiryapp.NewInquiryService(inquiryRepo, propertyRepo, log)
	blogService := contentapp.NewBlogService(blogRepo)
	siteContentService := contentapp.NewSiteContentService(
		testimonialRepo,
		faqRepo,
		serviceRepo,
		heroRepo,
		cachedSettingRepo,
	)
	mediaService := contentapp.NewMediaService(mediaRepo, objectStorage, cfg.Storage.MaxUploadSize, log)
	dashboardService := dashboardapp.NewDashboardService(propertyRepo, userRepo, inquiryRepo, blogRepo)

	// Business metrics are exported only when telemetry is enabled.
	// Services carry nil-guarded recorders so this stays optional.
	if cfg.Telemetry.Enabled {
		meterProvider, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
			Enabled:           cfg.Telemetry.Enabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Warn("Failed to initialize meter provider, business metrics disabled", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := meterProvider.Shutdown(shutdownCtx); err != nil {
					log.Error("Error shutting down meter provider", zap.Error(err))
				}
			}()

			// Query latency and connection pool metrics ride the same
			// meter provider as the business metrics
			if cfg.Telemetry.DBMetricsEnabled {
				dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meterProvider, telemetry.DefaultDBMetricsConfig(), log)
				if err != nil {
					log.Warn("Failed to register database metrics", zap.Error(err))
				} else if dbMetrics != nil {
					dbMetrics.StartPoolStatsCollection(context.Background())
					defer dbMetrics.Stop()
				}
			}

			businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
				Meter:           meterProvider.Meter("evergreen-business"),
				Logger:          log,
				ListingProvider: telemetry.NewGormListingMetricsProvider(db.DB),
				InquiryProvider: telemetry.NewGormInquiryMetricsProvider(db.DB),
			})
			if err != nil {
				log.Warn("Failed to initialize business metrics", zap.Error(err))
			} else {
				authService.SetBusinessMetrics(businessMetrics)
				propertyService.SetBusinessMetrics(businessMetrics)
				inquiryService.SetBusinessMetrics(businessMetrics)
				businessMetrics.StartPeriodicCollection(context.Background(), 0)
				defer businessMetrics.Stop()
			}
		}
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	blogHandler := handler.NewBlogHandler(blogService)
	siteContentHandler := handler.NewSiteContentHandler(siteContentService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom validation error messages
	middleware.SetupValidator()

	engine := gin.New()

	// Global middleware, order matters: request ID first so every
	// later middleware and log line can attach it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.ProfilingEnabled {
		// Tag request handling with route and method so profiles can
		// be sliced per endpoint
		engine.Use(middleware.Profiling())
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Resolve JWT claims before rate limiting so authenticated callers
	// get per-user buckets instead of sharing the per-IP bucket
	engine.Use(middleware.OptionalJWTAuthMiddleware(jwtService))
	// Protected page prefixes redirect instead of 404ing: anonymous
	// visitors to login, non-admin sessions on /admin back home
	engine.Use(middleware.RouteGuardMiddleware())
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	// Health check endpoint (outside versioned API)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation
	jwtAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		Logger:         log,
	})
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, jwtAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// Initialize router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	adminOnly := middleware.AdminOnlyMiddleware()
	superAdminOnly := middleware.SuperAdminOnlyMiddleware()

	// A tighter limiter for credential endpoints to slow down
	// password guessing
	var authLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authLimit = middleware.RateLimit(authLimiter)
	} else {
		authLimit = func(c *gin.Context) { c.Next() }
	}

	// Identity domain (registration, login, account)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authLimit, authHandler.Register)
	authRoutes.POST("/login", authLimit, authHandler.Login)
	authRoutes.POST("/refresh", authLimit, authHandler.RefreshToken)
	authRoutes.POST("/logout", jwtAuth, authHandler.Logout)
	authRoutes.GET("/me", jwtAuth, authHandler.Me)
	authRoutes.PUT("/profile", jwtAuth, authHandler.UpdateProfile)
	authRoutes.PUT("/password", jwtAuth, authHandler.ChangePassword)

	// Listing domain (public property catalog)
	listingRoutes := router.NewDomainGroup("listing", "/listing")
	listingRoutes.GET("/properties", propertyHandler.Browse)
	listingRoutes.GET("/properties/search", propertyHandler.Search)
	listingRoutes.GET("/properties/featured", propertyHandler.Featured)
	listingRoutes.GET("/properties/mine", jwtAuth, propertyHandler.MyListings)
	listingRoutes.POST("/properties/submit", jwtAuth, propertyHandler.Submit)
	listingRoutes.GET("/properties/:slug", propertyHandler.GetBySlug)

	// Engagement domain (saved properties), all routes require a session
	engagementRoutes := router.NewDomainGroup("engagement", "/engagement")
	engagementRoutes.Use(jwtAuth)
	engagementRoutes.GET("/favorites", favoriteHandler.List)
	engagementRoutes.GET("/favorites/ids", favoriteHandler.SavedIDs)
	engagementRoutes.GET("/favorites/:id", favoriteHandler.IsSaved)
	engagementRoutes.POST("/favorites/:id/toggle", favoriteHandler.Toggle)

	// Inquiry domain, submission is public
	inquiryRoutes := router.NewDomainGroup("inquiry", "/inquiry")
	inquiryRoutes.POST("/inquiries", inquiryHandler.Submit)

	// Content domain (public site content)
	contentRoutes := router.NewDomainGroup("content", "/content")
	contentRoutes.GET("/blog", blogHandler.ListPublished)
	contentRoutes.GET("/blog/:slug", blogHandler.GetBySlug)
	contentRoutes.GET("/testimonials", siteContentHandler.Testimonials)
	contentRoutes.GET("/faqs", siteContentHandler.FAQs)
	contentRoutes.GET("/services", siteContentHandler.Services)
	contentRoutes.GET("/services/:slug", siteContentHandler.ServiceBySlug)
	contentRoutes.GET("/hero", siteContentHandler.Hero)
	contentRoutes.GET("/settings", siteContentHandler.Settings)

	// Admin domain, JWT plus admin role required on every route
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(jwtAuth, adminOnly)

	// Property management
	adminRoutes.GET("/properties", propertyHandler.AdminList)
	adminRoutes.POST("/properties", propertyHandler.Create)
	adminRoutes.GET("/properties/:id", propertyHandler.AdminGet)
	adminRoutes.PUT("/properties/:id", propertyHandler.Update)
	adminRoutes.DELETE("/properties/:id", propertyHandler.Delete)
	adminRoutes.POST("/properties/:id/approve", propertyHandler.Approve)
	adminRoutes.POST("/properties/:id/reject", propertyHandler.Reject)
	adminRoutes.PUT("/properties/:id/featured", propertyHandler.SetFeatured)
	adminRoutes.PUT("/properties/:id/status", propertyHandler.MarkStatus)

	// Inquiry management
	adminRoutes.GET("/inquiries", inquiryHandler.List)
	adminRoutes.GET("/inquiries/new/count", inquiryHandler.CountNew)
	adminRoutes.GET("/inquiries/:id", inquiryHandler.Get)
	adminRoutes.POST("/inquiries/:id/reply", inquiryHandler.MarkReplied)
	adminRoutes.POST("/inquiries/:id/archive", inquiryHandler.Archive)
	adminRoutes.DELETE("/inquiries/:id", inquiryHandler.Delete)

	// Blog management
	adminRoutes.GET("/blog", blogHandler.AdminList)
	adminRoutes.POST("/blog", blogHandler.Create)
	adminRoutes.GET("/blog/:id", blogHandler.AdminGet)
	adminRoutes.PUT("/blog/:id", blogHandler.Update)
	adminRoutes.DELETE("/blog/:id", blogHandler.Delete)

	// Site content management
	adminRoutes.GET("/testimonials", siteContentHandler.AdminTestimonials)
	adminRoutes.POST("/testimonials", siteContentHandler.CreateTestimonial)
	adminRoutes.PUT("/testimonials/:id", siteContentHandler.UpdateTestimonial)
	adminRoutes.DELETE("/testimonials/:id", siteContentHandler.DeleteTestimonial)
	adminRoutes.POST("/faqs", siteContentHandler.CreateFAQ)
	adminRoutes.PUT("/faqs/:id", siteContentHandler.UpdateFAQ)
	adminRoutes.DELETE("/faqs/:id", siteContentHandler.DeleteFAQ)
	adminRoutes.GET("/services", siteContentHandler.AdminServices)
	adminRoutes.POST("/services", siteContentHandler.CreateService)
	adminRoutes.PUT("/services/:id", siteContentHandler.UpdateService)
	adminRoutes.DELETE("/services/:id", siteContentHandler.DeleteService)
	adminRoutes.PUT("/hero", siteContentHandler.SetHero)
	adminRoutes.PUT("/settings", siteContentHandler.UpdateSettings)

	// Media library
	adminRoutes.POST("/media/uploads", mediaHandler.RequestUpload)
	adminRoutes.GET("/media", mediaHandler.List)
	adminRoutes.DELETE("/media/:id", mediaHandler.Delete)

	// User management, role changes are reserved for super admins
	adminRoutes.GET("/users", userHandler.List)
	adminRoutes.GET("/users/admins", userHandler.ListAdmins)
	adminRoutes.GET("/users/:id", userHandler.Get)
	adminRoutes.POST("/users/:id/deactivate", userHandler.Deactivate)
	adminRoutes.POST("/users/:id/activate", userHandler.Activate)
	adminRoutes.POST("/users/:id/grant", superAdminOnly, userHandler.GrantAdmin)
	adminRoutes.DELETE("/users/:id/grant", superAdminOnly, userHandler.RevokeAdmin)

	// Dashboard
	adminRoutes.GET("/dashboard/stats", dashboardHandler.Stats)

	// Register all domain groups
	r.Register(authRoutes).
		Register(listingRoutes).
		Register(engagementRoutes).
		Register(inquiryRoutes).
		Register(contentRoutes).
		Register(adminRoutes)

	// Register system routes with swagger-documented handlers
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
