package nsq

import (
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nsqpkg "github.com/piresc/cabbooking/internal/pkg/nsq"
	"github.com/piresc/cabbooking/services/notifications"
)

// NotificationHandler turns NSQ notification topics into inbox documents
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	cfg            *models.Config
	nrApp          *newrelic.Application
	consumers      []*nsqpkg.Consumer
}

// NewNotificationHandler creates a new notification NSQ handler
func NewNotificationHandler(
	notificationUC notifications.NotificationUC,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
		nrApp:          nrApp,
	}
}

type subscription struct {
	topic    string
	category models.NotificationCategory
	txnName  string
}

var subscriptions = []subscription{
	{topic: constants.TopicDiscount, category: models.CategoryDiscount, txnName: "NSQ.Notifications.HandleDiscount"},
	{topic: constants.TopicCabReady, category: models.CategoryCabReady, txnName: "NSQ.Notifications.HandleCabReady"},
}

// InitConsumers starts one consumer per notification topic, connecting through
// nsqlookupd when configured and straight to nsqd otherwise.
func (h *NotificationHandler) InitConsumers() error {
	for _, sub := range subscriptions {
		handler := notifications.DeliverFunc(h.notificationUC, h.nrApp, sub.category, sub.txnName)
		consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
			Topic:       sub.topic,
			Channel:     constants.ChannelInbox,
			MaxInFlight: h.cfg.Notifier.BatchSize,
			Backoff:     time.Duration(h.cfg.Notifier.PullBackoff) * time.Second,
		}, nsqpkg.MessageHandler(handler))
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to create consumer for %s: %w", sub.topic, err)
		}

		if len(h.cfg.NSQ.LookupdAddresses) > 0 {
			err = consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses)
		} else {
			err = consumer.ConnectToNSQD(h.cfg.NSQ.NSQDAddress)
		}
		if err != nil {
			consumer.Stop()
			h.Stop()
			return fmt.Errorf("failed to connect consumer for %s: %w", sub.topic, err)
		}

		logger.Info("NSQ notification consumer started",
			logger.String("topic", sub.topic),
			logger.String("channel", constants.ChannelInbox))
		h.consumers = append(h.consumers, consumer)
	}
	return nil
}

// Stop stops every started consumer, waiting for in-flight messages
func (h *NotificationHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}
