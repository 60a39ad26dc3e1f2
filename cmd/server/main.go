package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	_ "github.com/shopcore/backend/docs"
	catalogapp "github.com/shopcore/backend/internal/application/catalog"
	identityapp "github.com/shopcore/backend/internal/application/identity"
	"github.com/shopcore/backend/internal/domain/access"
	"github.com/shopcore/backend/internal/infrastructure/auth"
	"github.com/shopcore/backend/internal/infrastructure/cache"
	"github.com/shopcore/backend/internal/infrastructure/config"
	"github.com/shopcore/backend/internal/infrastructure/event"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/shopcore/backend/internal/infrastructure/metrics"
	"github.com/shopcore/backend/internal/infrastructure/persistence"
	"github.com/shopcore/backend/internal/infrastructure/telemetry"
	"github.com/shopcore/backend/internal/interfaces/graphql"
	"github.com/shopcore/backend/internal/interfaces/http/handler"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
	"github.com/shopcore/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Shopcore API
//	@version		1.0
//	@description	Identity and catalog backend: users, categories, master products and sub-products.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	telemetryCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}

	// Log bridge first so every later log line reaches the collector
	logProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetryCfg, cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled)
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, logProvider.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shopcore backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled: cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:  cfg.Database.DBName,
	}); err != nil {
		log.Warn("Failed to enable database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Redis is optional; without it revocations and cached price ranges are process-local
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	var blacklist auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	if redisClient != nil {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		log.Warn("Redis not configured, token revocations are kept in memory")
	}

	// Metrics
	appMetrics := metrics.New(true)

	// Event bus, with every event forwarded to Kafka when enabled
	eventBus := event.NewInMemoryEventBus(log)
	if cfg.Events.KafkaEnabled {
		forwarder := event.NewKafkaForwarder(event.NewKafkaWriter(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic), log)
		eventBus.Subscribe(forwarder)
		defer func() {
			if err := forwarder.Close(); err != nil {
				log.Error("Error closing Kafka writer", zap.Error(err))
			}
		}()
		log.Info("Kafka event forwarding enabled",
			zap.Strings("brokers", cfg.Events.KafkaBrokers),
			zap.String("topic", cfg.Events.KafkaTopic),
		)
	}
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	masterRepo := persistence.NewGormMasterProductRepository(db.DB)
	subRepo := persistence.NewGormSubProductRepository(db.DB)

	// Application services
	policy := access.DefaultPolicy()
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, auth.NewBcryptHasher(cfg.JWT.BcryptCost), jwtService, blacklist, eventBus, log)
	userService := identityapp.NewUserService(userRepo, policy, eventBus, log)
	contextResolver := identityapp.NewContextResolver(authService, log)

	priceCache := cache.NewPriceRangeCache(redisClient, cfg.Catalog.PriceRangeCacheTTL, log)
	prices := catalogapp.NewPriceRangeProvider(subRepo, priceCache, appMetrics, log)
	cascade := catalogapp.NewCascadeCoordinator(categoryRepo, masterRepo, subRepo, prices, eventBus, appMetrics, cfg.Catalog.CascadeConcurrency, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, cascade, policy, log)
	masterService := catalogapp.NewMasterProductService(masterRepo, categoryRepo, prices, cascade, policy, eventBus, log)
	subService := catalogapp.NewSubProductService(subRepo, masterRepo, prices, policy, eventBus, log)

	// GraphQL
	executor := graphql.NewExecutor(graphql.LoadSchema(), log)
	graphql.Register(executor, graphql.Services{
		Auth:          authService,
		Users:         userService,
		Categories:    categoryService,
		MasterProduct: masterService,
		SubProduct:    subService,
	}, graphql.Limits{DefaultLimit: cfg.Catalog.DefaultPageLimit, MaxLimit: cfg.Catalog.MaxPageLimit})

	// Credential endpoints share one budget per client across REST and GraphQL
	var authLimiter middleware.RateLimiter
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter = newRateLimiter(redisClient, "auth", cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		executor.LimitFields(authLimiter, "login", "signup")
	}

	// HTTP handlers
	paging := handler.Paging{DefaultLimit: cfg.Catalog.DefaultPageLimit, MaxLimit: cfg.Catalog.MaxPageLimit}
	checks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		User:          handler.NewUserHandler(userService, paging),
		Category:      handler.NewCategoryHandler(categoryService, paging),
		MasterProduct: handler.NewMasterProductHandler(masterService, paging),
		SubProduct:    handler.NewSubProductHandler(subService, paging),
		System:        handler.NewSystemHandler(cfg.App.Name, version, checks),
		GraphQL:       graphql.Handler(executor),
	}
	if cfg.Telemetry.MetricsEnabled {
		handlers.Metrics = appMetrics.Handler()
	}

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Middleware order: request id, tracing, recovery, logging, metrics, security headers, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if tracerProvider.IsEnabled() {
		engine.Use(middleware.TracingAttributeInjector())
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.Metrics(appMetrics))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(newRateLimiter(redisClient, "global", cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow))
	}

	routerOpts := router.Options{
		APIVersion:    "v1",
		EnableSwagger: cfg.Swagger.Enabled,
	}
	if authLimiter != nil {
		routerOpts.AuthRateLimit = middleware.RateLimit(authLimiter)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow))
	}
	groups := router.Mount(engine, contextResolver, handlers, routerOpts)
	for _, g := range groups {
		for _, route := range g.Routes("/api/v1") {
			log.Debug("Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

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
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := logProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down log provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newRateLimiter shares counters through Redis when it is configured
func newRateLimiter(client *redis.Client, scope string, limit int, window time.Duration) middleware.RateLimiter {
	if client == nil {
		return middleware.NewMemoryRateLimiter(limit, window)
	}
	return middleware.NewRedisRateLimiter(client, "shopcore:ratelimit:"+scope+":", limit, window)
}
