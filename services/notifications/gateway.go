package notifications

import (
	"context"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// NotificationGW publishes notification events to the message broker
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/notifications NotificationGW
type NotificationGW interface {
	PublishDiscountEarned(ctx context.Context, event models.NotificationEvent) error
	PublishCabReady(ctx context.Context, event models.NotificationEvent, delay time.Duration) error
}
