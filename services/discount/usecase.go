package discount

import "context"

const (
	// EligibleOrdinal is the booking count that earns the discount
	EligibleOrdinal = 3
	// Multiplier is applied to the fare of the payment that consumes the discount
	Multiplier = 0.3
	// NoDiscount is the multiplier of every other payment
	NoDiscount = 1.0
)

// DiscountUC defines the interface for discount business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/discount DiscountUC
type DiscountUC interface {
	OnBookingCreated(ctx context.Context, ownerID, bookingID string) error
	TryConsume(ctx context.Context, ownerID string) (float64, error)
	IsAvailable(ctx context.Context, ownerID string) (bool, error)
}
