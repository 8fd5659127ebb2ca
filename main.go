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

	"github.com/odualeSamsonSolomon/JoTech/cart"
	"github.com/odualeSamsonSolomon/JoTech/clients"
	"github.com/odualeSamsonSolomon/JoTech/controllers"
	"github.com/odualeSamsonSolomon/JoTech/database"
	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/kafka"
	"github.com/odualeSamsonSolomon/JoTech/logger"
	"github.com/odualeSamsonSolomon/JoTech/middleware"
	"github.com/odualeSamsonSolomon/JoTech/repository"
	"github.com/odualeSamsonSolomon/JoTech/routes"
	"github.com/odualeSamsonSolomon/JoTech/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize("development")
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	// MongoDB backs the catalog and every persisted entity.
	mongoClient, db, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.DisconnectMongo(mongoClient); err != nil {
			zap.L().Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	// Redis holds the durable cart slots. Without it carts live in memory
	// only, which keeps local development one-command.
	newStorage := func(sessionID string) cart.Storage {
		return cart.NewMemoryStorage()
	}
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		newStorage = func(sessionID string) cart.Storage {
			return cart.NewRedisStorage(redisClient, sessionID, cfg.CartTTL)
		}
	} else {
		zap.L().Warn("REDIS_URL not set; carts will not survive a restart")
	}

	// Kafka order events are optional and best-effort.
	var producer kafka.ProducerAPI
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer p.Close()
		producer = p
	}

	productRepo := repository.NewProductRepository(db)
	seedProducts(productRepo)
	orderRepo := repository.NewOrderRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	orderService := services.NewOrderPlacementService(productRepo, orderRepo, producer)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)

	catalogClient := clients.NewCatalogClient(cfg.CatalogBaseURL)
	orderClient := clients.NewOrderClient(cfg.OrderBaseURL)

	productController := controllers.NewProductController(productRepo)
	orderController := controllers.NewOrderController(orderService)
	engagementController := controllers.NewEngagementController(newsletterService, appointmentService)
	cartController := controllers.NewCartController(catalogClient, orderClient, newStorage)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(apperrors.ErrorMiddleware())

	routes.RegisterAPIRoutes(router, productController, orderController, engagementController)
	routes.RegisterCartRoutes(router, cartController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zap.L().Info("JoTech storefront is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("Shutdown error", zap.Error(err))
	}
	zap.L().Info("Server shutdown complete")
}

// seedProducts loads the starter catalog into an empty products collection
// so a fresh install serves something without manual data entry.
func seedProducts(repo repository.ProductRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := repo.FindAll(ctx)
	if err != nil {
		zap.L().Warn("Catalog seed check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, p := range clients.FallbackProducts() {
		if err := repo.Create(ctx, &p); err != nil {
			zap.L().Warn("Catalog seed insert failed", zap.String("product_id", p.ID), zap.Error(err))
		}
	}
	zap.L().Info("Seeded starter catalog", zap.Int("count", len(clients.FallbackProducts())))
}
