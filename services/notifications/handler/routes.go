package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/models"
	natspkg "github.com/piresc/cabbooking/internal/pkg/nats"
	"github.com/piresc/cabbooking/services/notifications"
	httpHandler "github.com/piresc/cabbooking/services/notifications/handler/http"
	natsHandler "github.com/piresc/cabbooking/services/notifications/handler/nats"
	nsqHandler "github.com/piresc/cabbooking/services/notifications/handler/nsq"
)

// Handler combines all handlers for the notifications service
type Handler struct {
	notificationsHTTP *httpHandler.NotificationHandler
	notificationUC    notifications.NotificationUC
	cfg               *models.Config
	nrApp             *newrelic.Application
}

// NewHandler creates a new combined handler
func NewHandler(
	notificationUC notifications.NotificationUC,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		notificationsHTTP: httpHandler.NewNotificationHandler(notificationUC),
		notificationUC:    notificationUC,
		cfg:               cfg,
		nrApp:             nrApp,
	}
}

// RegisterRoutes registers the inbox routes behind the auth middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	inbox := e.Group("/users/:uid/notifications", auth)
	inbox.GET("", h.notificationsHTTP.List)
	inbox.POST("", h.notificationsHTTP.Add)
	inbox.DELETE("/:id", h.notificationsHTTP.Delete)
	inbox.PATCH("/:id/read", h.notificationsHTTP.MarkRead)
}

// InitNATSConsumers prepares the JetStream pull loops of the notifier
func (h *Handler) InitNATSConsumers(ctx context.Context, client *natspkg.Client) ([]*natspkg.PullConsumer, error) {
	return natsHandler.NewNotificationHandler(h.notificationUC, client, h.cfg, h.nrApp).InitConsumers(ctx)
}

// InitNSQConsumers starts the NSQ consumers of the notifier. The returned
// handler stops them.
func (h *Handler) InitNSQConsumers() (*nsqHandler.NotificationHandler, error) {
	consumers := nsqHandler.NewNotificationHandler(h.notificationUC, h.cfg, h.nrApp)
	if err := consumers.InitConsumers(); err != nil {
		return nil, err
	}
	return consumers, nil
}
