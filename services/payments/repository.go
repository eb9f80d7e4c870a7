package payments

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/payments PaymentRepo
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Payment, error)
}
