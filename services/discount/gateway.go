package discount

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// DiscountGW announces earned discounts to the notification pipeline
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/discount DiscountGW
type DiscountGW interface {
	PublishDiscountEarned(ctx context.Context, event models.NotificationEvent) error
}
