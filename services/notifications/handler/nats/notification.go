package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	natspkg "github.com/piresc/cabbooking/internal/pkg/nats"
	"github.com/piresc/cabbooking/services/notifications"
)

// NotificationHandler turns JetStream notification subjects into inbox documents
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	natsClient     *natspkg.Client
	cfg            *models.Config
	nrApp          *newrelic.Application
}

// NewNotificationHandler creates a new notification NATS handler
func NewNotificationHandler(
	notificationUC notifications.NotificationUC,
	client *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		natsClient:     client,
		cfg:            cfg,
		nrApp:          nrApp,
	}
}

// InitConsumers ensures the stream and its durable consumers exist and returns
// one pull loop per subscription. The loops start when Run is called.
func (h *NotificationHandler) InitConsumers(ctx context.Context) ([]*natspkg.PullConsumer, error) {
	logger.Info("Initializing JetStream consumers for notifier")

	if err := h.natsClient.EnsureStream(ctx, natspkg.NotificationStreamConfig()); err != nil {
		return nil, fmt.Errorf("failed to ensure notification stream: %w", err)
	}

	var loops []*natspkg.PullConsumer
	for _, cc := range natspkg.NotificationConsumerConfigs() {
		category, txnName, err := route(cc.ConsumerName)
		if err != nil {
			return nil, err
		}

		logger.Info("Creating notification consumer",
			logger.String("stream", cc.StreamName),
			logger.String("consumer", cc.ConsumerName),
			logger.String("filter_subject", cc.FilterSubject))

		consumer, err := h.natsClient.CreateConsumer(ctx, cc)
		if err != nil {
			return nil, fmt.Errorf("failed to create consumer %s: %w", cc.ConsumerName, err)
		}

		handler := notifications.DeliverFunc(h.notificationUC, h.nrApp, category, txnName)
		loops = append(loops, natspkg.NewPullConsumer(consumer, natspkg.MessageHandler(handler), h.pullConfig(cc.ConsumerName)))
	}
	return loops, nil
}

func (h *NotificationHandler) pullConfig(name string) natspkg.PullConsumerConfig {
	config := natspkg.PullConsumerConfig{Name: name}
	if h.cfg != nil {
		config.BatchSize = h.cfg.Notifier.BatchSize
		config.FetchWait = time.Duration(h.cfg.Notifier.FetchWait) * time.Second
		config.Backoff = time.Duration(h.cfg.Notifier.PullBackoff) * time.Second
	}
	return config
}

func route(consumerName string) (models.NotificationCategory, string, error) {
	switch consumerName {
	case constants.ConsumerDiscountNotifier:
		return models.CategoryDiscount, "NATS.Notifications.HandleDiscount", nil
	case constants.ConsumerCabReadyNotifier:
		return models.CategoryCabReady, "NATS.Notifications.HandleCabReady", nil
	default:
		return "", "", fmt.Errorf("no handler for consumer %s", consumerName)
	}
}
