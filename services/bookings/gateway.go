package bookings

import (
	"context"
	"time"
)

// DiscountTrigger is told about every persisted booking
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/bookings DiscountTrigger,CabReadyScheduler
type DiscountTrigger interface {
	OnBookingCreated(ctx context.Context, ownerID, bookingID string) error
}

// CabReadyScheduler arranges the delayed cab-ready notification of a booking
type CabReadyScheduler interface {
	ScheduleCabReady(ctx context.Context, ownerID, bookingID, start, end string, delay time.Duration)
}
