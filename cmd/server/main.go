package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/quinntest007-creator/QueueBlaze/internal/application/catalog"
	identityapp "github.com/quinntest007-creator/QueueBlaze/internal/application/identity"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/intake"
	orderapp "github.com/quinntest007-creator/QueueBlaze/internal/application/order"
	settingsapp "github.com/quinntest007-creator/QueueBlaze/internal/application/settings"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/auth"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/cache"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/config"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/logger"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/persistence"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/storage"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/telemetry"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/handler"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/middleware"
	"github.com/quinntest007-creator/QueueBlaze/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting QueueBlaze backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", Version),
	)

	ctx := context.Background()

	// Tracing
	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer provider shutdown failed", zap.Error(err))
		}
	}()

	// Metrics
	mp, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Meter provider shutdown failed", zap.Error(err))
		}
	}()

	// Log export: tee zap output to the collector
	lp, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = lp.Shutdown(shutdownCtx)
	}()
	if lp.IsEnabled() {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		log = telemetry.BridgeLogger(log, telemetry.NewZapOTELCore(lp, level))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.DBName),
	)

	if tp.IsEnabled() && cfg.Telemetry.DBTraceEnabled {
		plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfigFrom(cfg.Telemetry), log)
		if err := plugin.Register(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}
	if mp.IsEnabled() {
		if sqlDB, err := db.DB.DB(); err == nil {
			if err := telemetry.RegisterDBPoolMetrics(mp.Meter("db.pool"), sqlDB); err != nil {
				log.Warn("Failed to register database pool metrics", zap.Error(err))
			}
		}
	}

	// Production schemas are managed by cmd/migrate
	if !cfg.IsProduction() {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
	}

	// Counter store for rate limits and token revocation
	store, err := cache.NewCounterStoreFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.IsProduction()),
	).CreateStore()
	if err != nil {
		log.Fatal("Failed to create counter store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("Failed to close counter store", zap.Error(err))
		}
	}()

	jwtService := auth.NewJWTService(cfg.JWT)
	revocations := auth.NewTokenRevocationList(store)

	// Image storage: S3 when configured, otherwise images stay inline in the database
	var images catalogapp.ImageStorage
	if cfg.Storage.Driver == "s3" {
		s3Storage, err := storage.NewS3ImageStorage(ctx, &cfg.Storage.S3, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize S3 image storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to prepare S3 bucket", zap.Error(err))
		}
		images = s3Storage
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	adminUserRepo := persistence.NewGormAdminUserRepository(db.DB)

	// Services
	productService := catalogapp.NewProductService(productRepo, images, log)
	orderService := orderapp.NewOrderService(orderRepo, log)
	dashboardService := orderapp.NewDashboardService(productRepo, orderRepo)
	settingsService := settingsapp.NewSettingsService(settingsRepo, log)
	authService := identityapp.NewAuthService(adminUserRepo, jwtService, revocations, log)
	var intakeOpts []intake.ServiceOption
	if mp.IsEnabled() {
		intakeMetrics, err := intake.NewMetrics(mp.Meter("intake"))
		if err != nil {
			log.Warn("Intake metrics disabled", zap.Error(err))
		} else {
			intakeOpts = append(intakeOpts, intake.WithMetrics(intakeMetrics))
		}
	}
	intakeService := intake.NewService(
		orderRepo,
		intake.NewInquiryRateLimiter(store, cfg.Intake.InquiryLimit, cfg.Intake.InquiryWindow),
		log,
		intakeOpts...,
	)

	if err := settingsService.EnsureDefault(ctx); err != nil {
		log.Fatal("Failed to ensure site settings", zap.Error(err))
	}
	if cfg.Admin.Bootstrap {
		created, err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			log.Fatal("Failed to bootstrap admin user", zap.Error(err))
		}
		if created {
			log.Info("Admin user created", zap.String("username", cfg.Admin.Username))
		}
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	// 8. Tracing - Server spans (no-op when telemetry is off)
	// 9. Metrics - Request count, latency and sizes (no-op when telemetry is off)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecureWithConfig(securityConfig(cfg)))

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Store:     store,
			KeyPrefix: "rate_limit_http_",
			Limit:     cfg.HTTP.RateLimitRequests,
			Window:    cfg.HTTP.RateLimitWindow,
			Logger:    log,
		}))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tp.IsEnabled(),
	}))
	engine.Use(middleware.SpanAttributes())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: mp,
		Logger:        log,
	}))

	guards := router.AdminGuards{
		Auth: middleware.JWTAuth(middleware.JWTMiddlewareConfig{
			Validator:   jwtService,
			Revocations: revocations,
			Logger:      log,
		}),
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		guards.LoginLimit = middleware.RateLimit(middleware.RateLimitConfig{
			Store:     store,
			KeyPrefix: "rate_limit_login_",
			Limit:     cfg.HTTP.AuthRateLimitRequests,
			Window:    cfg.HTTP.AuthRateLimitWindow,
			Logger:    log,
		})
	}

	router.Setup(engine, router.Handlers{
		Health:     handler.NewHealthHandler(db, Version),
		Intake:     handler.NewIntakeHandler(intakeService),
		Storefront: handler.NewStorefrontHandler(productService, settingsService),
		Auth:       handler.NewAuthHandler(authService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Product:    handler.NewProductHandler(productService),
		Order:      handler.NewOrderHandler(orderService),
		Settings:   handler.NewSettingsHandler(settingsService),
	}, guards)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// securityConfig enables HSTS only in production where TLS terminates in front of the app
func securityConfig(cfg *config.Config) middleware.SecurityConfig {
	sec := middleware.DefaultSecurityConfig()
	if cfg.IsProduction() {
		sec.HSTSEnabled = true
	}
	return sec
}
