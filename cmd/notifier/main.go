package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/config"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/health"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	natspkg "github.com/piresc/cabbooking/internal/pkg/nats"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/cabbooking/internal/pkg/nsq"
	"github.com/piresc/cabbooking/internal/pkg/server"
	notificationsGW "github.com/piresc/cabbooking/services/notifications/gateway"
	notificationsHandler "github.com/piresc/cabbooking/services/notifications/handler"
	notificationsRepo "github.com/piresc/cabbooking/services/notifications/repository"
	notificationsUC "github.com/piresc/cabbooking/services/notifications/usecase"
)

func main() {
	appName := "cabbooking-notifier"
	configPath := "config/notifier.env"
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

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notificationRepository := notificationsRepo.NewNotificationRepository(configs, postgresClient.GetDB())

	// Start the subscriber loops of the configured broker
	var loops sync.WaitGroup
	switch configs.Messaging.Driver {
	case "nsq":
		stopConsumers := runNSQ(configs, nrApp, notificationRepository, healthService)
		defer stopConsumers()
	default:
		natsClient := runNATS(ctx, configs, nrApp, notificationRepository, healthService, &loops)
		defer natsClient.Close()
	}

	// Health endpoints only; the notifier has no public API
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		logger.Error("Health server stopped with error", logger.Err(err))
		stop()
	}

	logger.Info("Waiting for subscriber loops to stop")
	loops.Wait()

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}
	logger.Info("Notifier exiting gracefully")
	_ = zapLogger.Sync()
}

// runNATS ensures the JetStream consumers and starts one pull loop per subject.
// The loops stop when ctx ends.
func runNATS(
	ctx context.Context,
	configs *models.Config,
	nrApp *newrelic.Application,
	repo *notificationsRepo.NotificationRepo,
	healthService *health.HealthService,
	loops *sync.WaitGroup,
) *natspkg.Client {
	natsClient, err := natspkg.NewClient(configs.NATS.URL, configs.App.Name)
	if err != nil {
		logger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	uc := notificationsUC.NewNotificationUC(repo, notificationsGW.NewNATSGateway(natspkg.NewProducer(natsClient)))
	handler := notificationsHandler.NewHandler(uc, configs, nrApp)

	consumers, err := handler.InitNATSConsumers(ctx, natsClient)
	if err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	for _, consumer := range consumers {
		loops.Add(1)
		go func(c *natspkg.PullConsumer) {
			defer loops.Done()
			c.Run(ctx)
		}(consumer)
	}

	logger.Info("JetStream pull loops started", logger.Int("count", len(consumers)))
	return natsClient
}

// runNSQ starts the NSQ consumers and returns a func that stops them
func runNSQ(
	configs *models.Config,
	nrApp *newrelic.Application,
	repo *notificationsRepo.NotificationRepo,
	healthService *health.HealthService,
) func() {
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	healthService.AddChecker("nsq", health.NewPingHealthChecker(producer.Ping))

	uc := notificationsUC.NewNotificationUC(repo, notificationsGW.NewNSQGateway(producer))
	handler := notificationsHandler.NewHandler(uc, configs, nrApp)

	consumers, err := handler.InitNSQConsumers()
	if err != nil {
		producer.Stop()
		logger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	logger.Info("NSQ consumers started", logger.Strings("lookupd", configs.NSQ.LookupdAddresses))
	return func() {
		consumers.Stop()
		producer.Stop()
	}
}
