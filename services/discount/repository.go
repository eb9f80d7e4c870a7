package discount

import "context"

// DiscountRepo defines the data access operations of the discount state machine.
// All methods join the transaction carried by ctx.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/discount DiscountRepo
type DiscountRepo interface {
	BookingOrdinal(ctx context.Context, ownerID, bookingID string) (int, error)
	GrantDiscount(ctx context.Context, ownerID string) (bool, error)
	ConsumeDiscount(ctx context.Context, ownerID string) (bool, error)
	SaveDiscountNotification(ctx context.Context, ownerID, message string) error
	RemoveDiscountNotification(ctx context.Context, ownerID string) error
	IsAvailable(ctx context.Context, ownerID string) (bool, error)
}
