package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirehub-backend/config"
	_ "hirehub-backend/docs" // Important for Swagger
	"hirehub-backend/internal/chatbot"
	v1 "hirehub-backend/internal/delivery/http/v1"
	"hirehub-backend/internal/repository/postgres"
	"hirehub-backend/internal/usecase"
	"hirehub-backend/pkg/auth"
	"hirehub-backend/pkg/database"
	"hirehub-backend/pkg/logger"
	"hirehub-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// @title           HireHub API
// @version         1.0
// @description     Job board backend with skill matching and a help assistant.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting HireHub backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Info("Redis not configured, using in-memory rate limiting")
		} else {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}
	defer func() { _ = redis.Close() }()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	seekerRepo := postgres.NewSeekerRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, seekerRepo, companyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, seekerRepo)
	chatUC := usecase.NewChatUsecase(chatbot.Default())

	// 7. Setup Auth Provider (JWKS); disabled when JWKS_URL is empty
	jwksProvider := auth.NewProvider(cfg.JWKSURL, nil)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ChatUC:        chatUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
		HealthCheck: func(c *gin.Context) error {
			return dbPool.Ping(c.Request.Context())
		},
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
