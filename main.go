package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/controllers"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/database"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/kafka"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/logger"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/repository"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/routes"
	"github.com/s-sucharita/Multi-Vendor-Marketplace/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	log := logger.Log

	db, err := database.ConnectPostgres(database.PostgresConfig{
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		SSLMode:  cfg.PostgresSSLMode,
		TimeZone: cfg.PostgresTimeZone,
	}, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	// event stream is optional: no brokers configured means no publisher
	var producer kafka.ProducerAPI
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaOrderTopic, log)
		defer p.Close()
		producer = p
	}

	txManager := repository.NewGormTxManager(db)
	userRepo := repository.NewGormUserRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	paymentRepo := repository.NewGormPaymentRepository(db)
	notificationRepo := repository.NewGormNotificationRepository(db)
	inventoryRepo := repository.NewGormInventoryRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)
	returnRepo := repository.NewGormReturnRepository(db)
	disputeRepo := repository.NewGormDisputeRepository(db)
	messageRepo := repository.NewGormVendorMessageRepository(db)
	leaveRepo := repository.NewGormLeaveRepository(db)
	taskRepo := repository.NewGormTaskRepository(db)
	goalRepo := repository.NewGormGoalRepository(db)
	complianceRepo := repository.NewGormComplianceRepository(db)
	activityRepo := repository.NewGormActivityLogRepository(db)
	cartRepo := repository.NewRedisCartRepository(redisClient, time.Duration(cfg.CartTTLHours)*time.Hour)

	notifier := services.NewNotifier(notificationRepo, producer, cfg.KafkaOrderTopic, log)

	userService := services.NewUserService(userRepo, log)
	productService := services.NewProductService(productRepo, inventoryRepo, txManager, log)
	cartService := services.NewCartService(cartRepo, productRepo, log)
	orderService := services.NewOrderService(orderRepo, productRepo, paymentRepo, cartRepo, txManager, notifier, log)
	inventoryService := services.NewInventoryService(inventoryRepo, productRepo, txManager, notifier, log)
	reviewService := services.NewReviewService(reviewRepo, productRepo, userRepo, log)
	notificationService := services.NewNotificationService(notificationRepo, log)
	vendorService := services.NewVendorService(returnRepo, disputeRepo, messageRepo, leaveRepo, orderRepo, productRepo, txManager, notifier, log)
	adminService := services.NewAdminService(userRepo, taskRepo, goalRepo, complianceRepo, activityRepo, leaveRepo, orderRepo, productRepo, disputeRepo, notificationRepo, notifier, log)

	validator := controllers.NewRequestValidator()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))

	routes.Register(r, &routes.Controllers{
		Auth:          controllers.NewAuthController(userService, validator),
		Products:      controllers.NewProductController(productService, reviewService),
		Cart:          controllers.NewCartController(cartService),
		Orders:        controllers.NewOrderController(orderService),
		Inventory:     controllers.NewInventoryController(inventoryService),
		Notifications: controllers.NewNotificationController(notificationService),
		Vendor:        controllers.NewVendorController(vendorService),
		Admin:         controllers.NewAdminController(adminService),
	})

	log.Info("marketplace listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
