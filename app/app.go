package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fulfillment-portal/app/controller"
	"fulfillment-portal/app/router"
	"fulfillment-portal/config"
	"fulfillment-portal/db"
	"fulfillment-portal/events"
	"fulfillment-portal/repository"
	"fulfillment-portal/service"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// App holds the HTTP server and the connections it owns
type App struct {
	Echo      *echo.Echo
	publisher events.Publisher
	redis     *redis.Client
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database connection
	connStr, err := cfg.ConnString()
	if err != nil {
		return nil, err
	}
	if err := db.InitDB(ctx, connStr); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	rdb, err := db.InitRedis(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, err
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	var pricingRepo repository.PricingRepositoryInterface = repository.NewPricingRepository(db.DB)
	if rdb != nil {
		pricingRepo = repository.NewCachedPricingRepository(pricingRepo, rdb, cfg.RedisTTL)
	}
	inventoryRepo := repository.NewInventoryRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	requestRepo := repository.NewShipmentRequestRepository(db.DB)

	// Initialize services
	pricingService := service.NewPricingService(pricingRepo)
	shipmentService := service.NewShipmentService(userRepo, inventoryRepo, requestRepo, publisher)
	inventoryService := service.NewInventoryService(inventoryRepo)

	var drive service.DriveServiceInterface
	if cfg.DriveCredentials != "" {
		driveService, err := service.NewDriveService(ctx, cfg.DriveCredentials)
		if err != nil {
			return nil, err
		}
		drive = driveService
	} else {
		log.Printf("⚠️  DRIVE_CREDENTIALS not set, report publishing disabled")
	}

	thumbs := service.NewThumbnailCache(filepath.Join(os.TempDir(), "fulfillment-portal", "thumbnails"))
	reportService := service.NewReportService(inventoryService, userRepo, service.LocateReportRenderer(cfg.ChromePath), drive, cfg.DriveFolder, thumbs)

	// Create controllers
	controllers := &router.Controllers{
		Pricing:   controller.NewPricingController(pricingService),
		Shipment:  controller.NewShipmentController(shipmentService),
		Inventory: controller.NewInventoryController(inventoryService, reportService),
	}

	if cfg.JWTSecret == "" {
		log.Printf("⚠️  JWT_SECRET not set, every /api request will be rejected")
	}

	return &App{
		Echo:      router.SetupRoutes(controllers, cfg.JWTSecret),
		publisher: publisher,
		redis:     rdb,
	}, nil
}

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	switch cfg.EventsBackend {
	case config.EventsKafka:
		log.Printf("✓ Publishing shipment events to kafka topic %s", cfg.KafkaTopic)
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case config.EventsRabbitMQ:
		publisher, err := events.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			return nil, err
		}
		log.Printf("✓ Publishing shipment events to rabbitmq queue %s", cfg.RabbitMQQueue)
		return publisher, nil
	}
	return events.NopPublisher{}, nil
}

// Close releases the connections opened by Initialize
func (a *App) Close() {
	if err := a.publisher.Close(); err != nil {
		log.Errorf("failed to close event publisher: %v", err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Errorf("failed to close redis: %v", err)
		}
	}
	if err := db.CloseDB(); err != nil {
		log.Errorf("failed to close database: %v", err)
	}
}
