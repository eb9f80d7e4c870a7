package notifications

import (
	"context"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// NotificationUC defines the interface for notification business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/notifications NotificationUC
type NotificationUC interface {
	ScheduleCabReady(ctx context.Context, ownerID, bookingID, start, end string, delay time.Duration)
	Deliver(ctx context.Context, event models.NotificationEvent) error
	Add(ctx context.Context, callerID, userID, message string) (*models.Notification, error)
	List(ctx context.Context, callerID, userID string) ([]*models.Notification, error)
	Delete(ctx context.Context, callerID, userID, id string) error
	MarkRead(ctx context.Context, callerID, userID, id string) error
}
