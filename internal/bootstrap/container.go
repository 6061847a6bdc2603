package bootstrap

import (
	"context"
	"log"

	"vendor-marketplace-be/internal/config"
	"vendor-marketplace-be/internal/controller"
	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/internal/pkg/mailer"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/internal/pkg/storage"
	"vendor-marketplace-be/internal/repository/contract"
	"vendor-marketplace-be/internal/repository/memory"
	"vendor-marketplace-be/internal/repository/unitofwork"
	"vendor-marketplace-be/internal/service"
	"vendor-marketplace-be/pkg/cache"
	pktNats "vendor-marketplace-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SubscriptionController controller.ISubscriptionController
	BookingController      controller.IBookingController
	CatalogController      controller.ICatalogController
	PlanController         controller.PlanController
	AdminController        controller.IAdminController

	// Middleware
	JwtMiddleware fiber.Handler
	UploadLimiter *serverutils.RateLimiter

	// Background Services (Exposed for main.go to run)
	NotificationConsumer service.INotificationConsumer
	ExpiryWorker         *service.ExpiryWorker

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	proofStore, err := storage.NewLocalStorage(cfg.Upload.Dir, int64(cfg.Upload.MaxBytes))
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare upload directory: %v", err)
	}

	var closers []func()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	closers = append(closers, func() { _ = pubSub.Close() })

	// NATS is optional; without it events stay in-process
	var external service.ExternalPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			external = natsPub
			closers = append(closers, natsPub.Close)
		}
	}

	// 3. Plan cache: Redis when reachable, in-process otherwise
	var planCache contract.PlanCache
	if cfg.App.RedisURL != "" {
		rdb, err := cache.NewRedisClient(context.Background(), cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory plan cache", err)
		} else {
			planCache = cache.NewRedisPlanCache(rdb, cfg.Subscription.PlanCacheTTL)
			closers = append(closers, func() { _ = rdb.Close() })
		}
	}
	if planCache == nil {
		planCache = memory.NewPlanCache(cfg.Subscription.PlanCacheTTL)
	}

	// 4. Services
	publisher := service.NewEventPublisher(pubSub, service.EventsTopic, external, sysLogger)

	planService := service.NewPlanService(uowFactory, planCache, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, sysLogger)
	subscriptionService := service.NewSubscriptionService(uowFactory, proofStore, publisher, sysLogger)
	bookingService := service.NewBookingService(uowFactory, publisher, sysLogger)
	adminService := service.NewAdminService(sysLogger)

	notificationConsumer := service.NewNotificationConsumer(pubSub, service.EventsTopic, uowFactory, emailService, sysLogger)
	expiryWorker := service.NewExpiryWorker(subscriptionService, cfg.Subscription.SweepInterval, sysLogger)

	uploadLimiter := serverutils.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// 5. Controllers
	return &Container{
		SubscriptionController: controller.NewSubscriptionController(subscriptionService, planService, uploadLimiter.Middleware()),
		BookingController:      controller.NewBookingController(bookingService),
		CatalogController:      controller.NewCatalogController(catalogService),
		PlanController:         controller.NewPlanController(planService),
		AdminController:        controller.NewAdminController(adminService),

		JwtMiddleware: serverutils.JwtMiddleware(cfg.Auth.JWTSecret),
		UploadLimiter: uploadLimiter,

		NotificationConsumer: notificationConsumer,
		ExpiryWorker:         expiryWorker,
		Logger:               sysLogger,

		closers: closers,
	}
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
