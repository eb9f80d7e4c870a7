package bookings

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, ownerID string, req models.CreateBookingRequest) (string, error)
	GetCurrent(ctx context.Context, ownerID string) ([]*models.Booking, error)
	GetPast(ctx context.Context, ownerID string) ([]*models.Booking, error)
	GetByID(ctx context.Context, ownerID, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, ownerID, id string) (bool, error)
}
