// Package main runs the InsureGenius HTTP API with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/insuregenius/backend/config"
	"github.com/insuregenius/backend/internal/auth"
	"github.com/insuregenius/backend/internal/billing"
	"github.com/insuregenius/backend/internal/claims"
	"github.com/insuregenius/backend/internal/documents"
	"github.com/insuregenius/backend/internal/fraud"
	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/internal/policy"
	"github.com/insuregenius/backend/internal/renewal"
	"github.com/insuregenius/backend/internal/tenants"
	"github.com/insuregenius/backend/pkg/database"
	"github.com/insuregenius/backend/pkg/queue"
	"github.com/insuregenius/backend/pkg/redis"
	"github.com/insuregenius/backend/pkg/response"
	"github.com/insuregenius/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Cfg := storage.S3Config{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			DocumentsBucket:      cfg.AWS.DocumentsBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}
		s3Client, err = storage.NewS3(ctx, s3Cfg, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		}
	}

	tokenService := auth.NewTokenService(cfg.JWT.Secret)
	sessionTTL := time.Duration(cfg.JWT.SessionTTLMinutes) * time.Minute
	legacyTTL := time.Duration(cfg.JWT.LegacyTTLHours) * time.Hour

	// Auth and tenancy
	userRepo := auth.NewRepository(pool)
	tenantRepo := tenants.NewRepository(pool)
	authHandler := auth.NewHandler(userRepo, tenantRepo, tokenService, sessionTTL, legacyTTL, logger)
	tenantHandler := tenants.NewHandler(tenantRepo, userRepo, logger)

	// Claims intelligence
	policyHandler := policy.NewHandler()
	claimHandler := claims.NewHandler()
	documentHandler := documents.NewHandler(s3Client, logger)

	// Fraud screening (synchronous score + async review queue)
	jobQueue := queue.NewQueue(rdb.Client, logger)
	fraudRepo := fraud.NewRepository(pool)
	fraudHandler := fraud.NewHandler(fraudRepo, jobQueue, logger)

	// Renewal prediction (stub model, cached per tenant+input)
	renewalHandler := renewal.NewHandler(renewal.NewStaticPredictor(), rdb.Client, logger)

	// Billing (stub gateway)
	billingRepo := billing.NewRepository(pool)
	billingHandler := billing.NewHandler(billingRepo, logger)

	verify := func(token string) (middleware.VerifiedClaims, error) {
		c, err := tokenService.Verify(token)
		if err != nil {
			return middleware.VerifiedClaims{}, err
		}
		return middleware.VerifiedClaims{Subject: c.Subject, TenantID: c.TenantID, Role: c.Role}, nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Auth (public)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Protected API (bearer token required)
	api := router.Group("")
	api.Use(middleware.Auth(verify, userRepo))
	{
		api.GET("/auth/me", authHandler.Me)

		// Tenancy
		api.GET("/tenants/me", tenantHandler.Me)
		api.GET("/tenants/me/users", middleware.RequireRole(models.RoleAdmin), tenantHandler.ListMembers)
		api.POST("/tenants/regenerate-api-key", middleware.RequireRole(models.RoleAdmin), tenantHandler.RegenerateAPIKey)

		// Claims intelligence
		api.POST("/policy/summary", policyHandler.Summary)
		api.POST("/claims/normalize", claimHandler.Normalize)
		api.POST("/docs/classify", documentHandler.ClassifyDoc)
		api.POST("/documents/upload", documentHandler.Upload)

		// Fraud screening
		api.POST("/fraud/check", middleware.RequireRole(models.RoleAdmin, models.RoleUnderwriter, models.RoleAgent), fraudHandler.Check)
		api.GET("/fraud/reports", middleware.RequireRole(models.RoleAdmin, models.RoleUnderwriter), fraudHandler.ListReports)

		// Renewal prediction
		api.POST("/renewal/predict", middleware.RequireRole(models.RoleAdmin, models.RoleUnderwriter, models.RoleAgent), renewalHandler.Predict)

		// Billing
		api.POST("/billing/checkout", billingHandler.Checkout)
		api.GET("/billing/history", billingHandler.History)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
