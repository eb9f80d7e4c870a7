package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/cabbooking/internal/pkg/config"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/health"
	httppkg "github.com/piresc/cabbooking/internal/pkg/http"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	natspkg "github.com/piresc/cabbooking/internal/pkg/nats"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/cabbooking/internal/pkg/nsq"
	"github.com/piresc/cabbooking/internal/pkg/server"
	bookingsHandler "github.com/piresc/cabbooking/services/bookings/handler"
	bookingsRepo "github.com/piresc/cabbooking/services/bookings/repository"
	bookingsUC "github.com/piresc/cabbooking/services/bookings/usecase"
	discountRepo "github.com/piresc/cabbooking/services/discount/repository"
	discountUC "github.com/piresc/cabbooking/services/discount/usecase"
	locationGW "github.com/piresc/cabbooking/services/location/gateway"
	locationHandler "github.com/piresc/cabbooking/services/location/handler"
	locationRepo "github.com/piresc/cabbooking/services/location/repository"
	locationUC "github.com/piresc/cabbooking/services/location/usecase"
	"github.com/piresc/cabbooking/services/notifications"
	notificationsGW "github.com/piresc/cabbooking/services/notifications/gateway"
	notificationsHandler "github.com/piresc/cabbooking/services/notifications/handler"
	notificationsRepo "github.com/piresc/cabbooking/services/notifications/repository"
	notificationsUC "github.com/piresc/cabbooking/services/notifications/usecase"
	paymentsGW "github.com/piresc/cabbooking/services/payments/gateway"
	paymentsHandler "github.com/piresc/cabbooking/services/payments/handler"
	paymentsRepo "github.com/piresc/cabbooking/services/payments/repository"
	paymentsUC "github.com/piresc/cabbooking/services/payments/usecase"
	usersHandler "github.com/piresc/cabbooking/services/users/handler"
	usersRepo "github.com/piresc/cabbooking/services/users/repository"
	usersUC "github.com/piresc/cabbooking/services/users/usecase"
)

func main() {
	appName := "cabbooking-api"
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("messaging_driver", configs.Messaging.Driver),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

	// Initialize the notification broker
	publisher, closeBroker := newPublisher(configs, healthService)
	defer closeBroker()

	// Fare and weather lookups share one client so their breakers show up in health
	lookupClient := httppkg.NewEnhancedClient(zapLogger, httppkg.ClientConfig{
		Timeout:    time.Duration(configs.Services.LookupTimeout) * time.Second,
		MaxRetries: configs.Services.LookupMaxRetries,
	})
	healthService.SetBreakerStats(lookupClient.CircuitBreakerStats)

	// Initialize repositories
	transactor := database.NewTransactor(db)
	bookingRepository := bookingsRepo.NewBookingRepository(configs, db)
	discountRepository := discountRepo.NewDiscountRepository(configs, db)
	notificationRepository := notificationsRepo.NewNotificationRepository(configs, db)
	paymentRepository := paymentsRepo.NewPaymentRepository(configs, db)
	userRepository := usersRepo.NewUserRepository(configs, db)
	favouriteRepository := locationRepo.NewFavouriteRepository(configs, db)
	geocodeCache := locationRepo.NewGeocodeCache(redisClient)

	// Initialize usecases
	notificationUseCase := notificationsUC.NewNotificationUC(notificationRepository, publisher)
	discountUseCase := discountUC.NewDiscountUC(discountRepository, publisher)

	bookingUseCase, err := bookingsUC.NewBookingUC(configs, bookingRepository, discountUseCase, notificationUseCase)
	if err != nil {
		logger.Fatal("Failed to initialize booking use case", logger.Err(err))
	}

	weatherClient := locationGW.NewWeatherClient(lookupClient, configs.Services.WeatherAPIURL, configs.Services.WeatherAPIKey)
	locationUseCase := locationUC.NewLocationUC(favouriteRepository, geocodeCache, weatherClient)

	fareLookup := paymentsGW.NewCachedFareLookup(
		paymentsGW.NewFareClient(lookupClient, configs.Services.FareAPIURL, configs.Services.FareAPIKey),
		redisClient,
		paymentsGW.DefaultFareTTL,
	)
	paymentUseCase, err := paymentsUC.NewPaymentUC(
		configs,
		paymentRepository,
		bookingUseCase,
		discountUseCase,
		locationUseCase,
		fareLookup,
		transactor,
	)
	if err != nil {
		logger.Fatal("Failed to initialize payment use case", logger.Err(err))
	}

	userUseCase := usersUC.NewUserUC(configs, userRepository, notificationUseCase)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	auth := middleware.JWTAuthMiddleware(configs.JWT)
	usersHandler.NewHandler(userUseCase, configs, redisClient.GetClient()).RegisterRoutes(e, auth)
	notificationsHandler.NewHandler(notificationUseCase, configs, nrApp).RegisterRoutes(e, auth)
	bookingsHandler.NewHandler(bookingUseCase).RegisterRoutes(e, auth)
	paymentsHandler.NewHandler(paymentUseCase).RegisterRoutes(e, auth)
	locationHandler.NewHandler(locationUseCase).RegisterRoutes(e, auth)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		logger.Error("HTTP server stopped with error", logger.Err(err))
	}

	// cab-ready publishes still in flight need the broker
	logger.Info("Waiting for scheduled notifications")
	notificationUseCase.Wait()

	if nrApp != nil {
		logger.Info("Shutting down New Relic")
		nrApp.Shutdown(10 * time.Second)
	}
	logger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}

// newPublisher connects to the configured broker and returns the gateway the
// discount and booking flows publish through, with its closer.
func newPublisher(configs *models.Config, healthService *health.HealthService) (notifications.NotificationGW, func()) {
	switch configs.Messaging.Driver {
	case "nsq":
		producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		healthService.AddChecker("nsq", health.NewPingHealthChecker(producer.Ping))
		logger.Info("NSQ producer initialized", logger.String("nsqd", configs.NSQ.NSQDAddress))
		return notificationsGW.NewNSQGateway(producer), producer.Stop

	default:
		natsClient, err := natspkg.NewClient(configs.NATS.URL, configs.App.Name)
		if err != nil {
			logger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := natsClient.EnsureStream(ctx, natspkg.NotificationStreamConfig()); err != nil {
			logger.Fatal("Failed to ensure notification stream", logger.Err(err))
		}

		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
		logger.Info("JetStream client initialized", logger.String("url", configs.NATS.URL))
		return notificationsGW.NewNATSGateway(natspkg.NewProducer(natsClient)), natsClient.Close
	}
}
