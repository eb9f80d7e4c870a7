package bookings

import (
	"context"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	ListUpcoming(ctx context.Context, ownerID string, now time.Time) ([]*models.Booking, error)
	ListPast(ctx context.Context, ownerID string, now time.Time) ([]*models.Booking, error)
	MarkPaid(ctx context.Context, ownerID, id string) (bool, error)
}
