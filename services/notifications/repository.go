package notifications

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// NotificationRepo defines the interface for inbox data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/notifications NotificationRepo
type NotificationRepo interface {
	InsertIfAbsent(ctx context.Context, n *models.Notification) (bool, error)
	InsertDiscountIfEligible(ctx context.Context, n *models.Notification) (bool, error)
	List(ctx context.Context, userID string) ([]*models.Notification, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
	MarkRead(ctx context.Context, userID, id string) (bool, error)
}
