package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prajwalnawale3040/trio-developers/internal/cache"
	"github.com/prajwalnawale3040/trio-developers/internal/client"
	"github.com/prajwalnawale3040/trio-developers/internal/config"
	"github.com/prajwalnawale3040/trio-developers/internal/dispatch"
	"github.com/prajwalnawale3040/trio-developers/internal/handler"
	"github.com/prajwalnawale3040/trio-developers/internal/metrics"
	"github.com/prajwalnawale3040/trio-developers/internal/middleware"
	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/repository"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
	"github.com/prajwalnawale3040/trio-developers/internal/utils"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Repositories ---
	accountRepo := repository.NewAccountRepository(dbPool)
	contactRepo := repository.NewContactRepository(dbPool)
	batchRepo := repository.NewBatchRepository(dbPool)
	messageRepo := repository.NewMessageRepository(dbPool)
	paymentRepo := repository.NewPaymentRepository(dbPool)
	statsRepo := repository.NewStatsRepository(dbPool)

	if err := seedAdminAccount(accountRepo, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// --- Metrics ---
	metrics.Init()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: metricsMux,
	}
	go func() {
		logger.Info("metrics server started", zap.String("port", cfg.MetricsPort))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("metrics server error", zap.Error(err))
		}
	}()

	// --- Optional Redis Stats Cache ---
	var statsCache cache.StatsCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		statsCache = cache.NewRedisCache(rdb, cfg.StatsCacheTTL)
		logger.Info("stats cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	// --- Outbound Delivery ---
	var delivery client.DeliveryClient
	switch cfg.DeliveryMode {
	case "webhook":
		if cfg.DeliveryWebhookURL == "" {
			log.Fatalf("DELIVERY_MODE=webhook requires DELIVERY_WEBHOOK_URL")
		}
		delivery = client.NewWebhookDelivery(cfg.DeliveryWebhookURL, cfg.DeliveryRetries, cfg.DeliveryTimeout)
	default:
		delivery = client.NewLogDelivery(logger)
	}

	// --- Dispatch Loop ---
	limiter := rate.NewLimiter(rate.Limit(cfg.SendRateLimit), cfg.SendRateLimit)
	processor := dispatch.NewProcessor(messageRepo, delivery, limiter, cfg.DispatchBatchSize, logger)
	dispatcher, err := dispatch.NewScheduler(cfg.DispatchInterval, processor.Tick, logger)
	if err != nil {
		log.Fatalf("Failed to create dispatcher: %v", err)
	}
	dispatcher.Start()

	// --- Initialize Services ---
	var verifier service.CredentialVerifier
	switch cfg.AuthMode {
	case "database":
		verifier = service.NewAccountVerifier(accountRepo)
	default:
		verifier = &service.StaticVerifier{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	}

	authService := service.NewAuthService(verifier, jwtUtil)
	contactService := service.NewContactService(contactRepo)
	batchService := service.NewBatchService(batchRepo)
	campaignService := service.NewCampaignService(messageRepo, contactRepo)
	paymentService := service.NewPaymentService(paymentRepo)
	statsService := service.NewStatsService(statsRepo, statsCache)
	aiService := service.NewAIService(client.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiTimeout))

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	batchHandler := handler.NewBatchHandler(batchService)
	messageHandler := handler.NewMessageHandler(campaignService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	statsHandler := handler.NewStatsHandler(statsService)
	aiHandler := handler.NewAIHandler(aiService)
	dispatchHandler := handler.NewDispatchHandler(dispatcher)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)

	protected := apiGroup.Group("")
	var dispatchMWs []gin.HandlerFunc
	if cfg.AuthRequired {
		protected.Use(middleware.JWTAuthMiddleware(jwtUtil))
		dispatchMWs = append(dispatchMWs, middleware.AdminMiddleware())
	}
	contactHandler.RegisterContactRoutes(protected)
	batchHandler.RegisterBatchRoutes(protected)
	messageHandler.RegisterMessageRoutes(protected)
	paymentHandler.RegisterPaymentRoutes(protected)
	statsHandler.RegisterStatsRoutes(protected)
	aiHandler.RegisterAIRoutes(protected)
	dispatchHandler.RegisterDispatchRoutes(protected, dispatchMWs...)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	dispatcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Printf("Metrics server shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// seedAdminAccount ensures the admin account exists so payment claims have a
// valid account reference and database auth mode works out of the box.
func seedAdminAccount(accounts repository.AccountRepository, cfg *config.Config) error {
	ctx := context.Background()

	existing, err := accounts.FindByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &model.Account{
		Username:         cfg.AdminUsername,
		Password:         hashed,
		Role:             model.RoleAdmin,
		SubscriptionPlan: "free",
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Seeded admin account %q (id=%d)", admin.Username, admin.ID)
	return nil
}
