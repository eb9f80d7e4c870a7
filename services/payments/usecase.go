package payments

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/payments PaymentUC
type PaymentUC interface {
	Pay(ctx context.Context, ownerID, bookingID string) (*models.PaymentDTO, error)
	GetPayments(ctx context.Context, callerID, userID string) ([]*models.Payment, error)
	GetReceipt(ctx context.Context, callerID, userID, paymentID string) (*models.Receipt, error)
}
