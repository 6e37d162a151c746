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
	"go.uber.org/zap"

	basketapp "github.com/procure/backend/internal/application/basket"
	catalogapp "github.com/procure/backend/internal/application/catalog"
	checkoutapp "github.com/procure/backend/internal/application/checkout"
	identityapp "github.com/procure/backend/internal/application/identity"
	partnerapp "github.com/procure/backend/internal/application/partner"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/infrastructure/config"
	"github.com/procure/backend/internal/infrastructure/logger"
	"github.com/procure/backend/internal/infrastructure/notification"
	"github.com/procure/backend/internal/infrastructure/persistence"
	"github.com/procure/backend/internal/infrastructure/pricelist"
	"github.com/procure/backend/internal/interfaces/http/handler"
	"github.com/procure/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting procurement backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	offerRepo := persistence.NewGormOfferRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Token blacklist backed by Redis when enabled, in-memory otherwise
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewMemoryTokenBlacklist()
		log.Info("In-memory token blacklist enabled")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Notification dispatcher delivering mail over SMTP
	sender := notification.NewSMTPSender(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	dispatcher := notification.NewDispatcher(sender, log, cfg.Notify.QueueSize)
	defer dispatcher.Close()

	// Application services
	authService := identityapp.NewAuthService(userRepo, contactRepo, jwtService, blacklist, log)
	contactService := identityapp.NewContactService(contactRepo, log)
	browseService := catalogapp.NewBrowseService(shopRepo, categoryRepo, offerRepo, log)
	basketService := basketapp.NewService(orderRepo, offerRepo, log)
	checkoutService := checkoutapp.NewService(orderRepo, contactRepo, userRepo, dispatcher, log)
	syncService := partnerapp.NewSyncService(txScope, shopRepo, pricelist.NewHTTPFetcher(nil), log)
	shopService := partnerapp.NewShopService(shopRepo, categoryRepo, offerRepo, log)
	fulfillmentService := partnerapp.NewFulfillmentService(orderRepo, userRepo, dispatcher, log)

	// HTTP handlers
	handlers := router.Handlers{
		User:    handler.NewUserHandler(authService, contactService, log),
		Catalog: handler.NewCatalogHandler(browseService, log),
		Basket:  handler.NewBasketHandler(basketService, log),
		Order:   handler.NewOrderHandler(checkoutService, log),
		Partner: handler.NewPartnerHandler(syncService, shopService, fulfillmentService, log),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(handlers, router.Config{
		JWTService:       jwtService,
		TokenBlacklist:   blacklist,
		Logger:           log,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		Health:           healthHandler(db),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
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
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness including database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
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
